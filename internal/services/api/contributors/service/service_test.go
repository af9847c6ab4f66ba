package service_test

import (
	"context"
	"testing"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/modkit/storekit"
	perr "askforge/internal/platform/errors"
	"askforge/internal/platform/testkit"
	"askforge/internal/services/api/contributors/repo"
	"askforge/internal/services/api/contributors/service"
)

func TestNew_NilBinderPanics(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() {
		service.New(nil, nil)
	})
}

type fakeRepo struct {
	limit int
	list  appwrite.UserList
	err   error
}

func (f *fakeRepo) TopUsers(_ context.Context, limit int) (appwrite.UserList, error) {
	f.limit = limit
	return f.list, f.err
}

func newSvc(f *fakeRepo) *service.Svc {
	client := appwrite.NewClient(appwrite.Options{Endpoint: "http://127.0.0.1:0", Project: "p", Key: "k"})
	return service.New(client, storekit.BindFunc[repo.Repo](func(storekit.Client) repo.Repo { return f }))
}

func TestTop(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{
		list: appwrite.UserList{
			Total: 2,
			Users: []appwrite.User{
				{ID: "u1", Name: "ada", UpdatedAt: "2026-08-01T00:00:00Z", Prefs: map[string]any{"reputation": float64(9)}},
				{ID: "u2", Name: "brin"},
			},
		},
	}
	svc := newSvc(f)

	out, err := svc.Top(context.Background())
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if f.limit != 10 {
		t.Fatalf("limit = %d, want 10", f.limit)
	}
	if out.Total != 2 || len(out.Users) != 2 {
		t.Fatalf("board = %+v", out)
	}
	if out.Users[0].Reputation != 9 || out.Users[1].Reputation != 0 {
		t.Fatalf("reputations = %d, %d", out.Users[0].Reputation, out.Users[1].Reputation)
	}
}

func TestTop_ErrorDegradesToEmptyBoard(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{err: perr.Unavailablef("directory down")}
	svc := newSvc(f)

	out, err := svc.Top(context.Background())
	if err != nil {
		t.Fatalf("directory errors must not surface: %v", err)
	}
	if out.Total != 0 || len(out.Users) != 0 {
		t.Fatalf("board = %+v, want empty", out)
	}
}
