package service_test

import (
	"testing"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/modkit/storekit"
	"askforge/internal/platform/testkit"
	"askforge/internal/services/api/questions/repo"
	"askforge/internal/services/api/questions/service"
)

func TestNew_NilBinderPanics(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() {
		service.New(nil, nil)
	})
}

func TestNew_NilClientPanics(t *testing.T) {
	t.Parallel()

	binder := storekit.BindFunc[repo.Repo](func(storekit.Client) repo.Repo { return &fakeRepo{} })
	testkit.MustPanic(t, func() {
		var nilClient *appwrite.Client
		service.New(nilClient, binder)
	})
}
