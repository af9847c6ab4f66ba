// Package repo provides identity directory access for contributors
package repo

import (
	"context"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/modkit/storekit"
)

// Repo defines the directory contract for contributors
type Repo interface {
	TopUsers(ctx context.Context, limit int) (appwrite.UserList, error)
}

type (
	// Store implements the Repo interface against the identity directory
	Store struct{}

	// queries holds the bound client methods
	queries struct{ c storekit.Client }
)

// NewStore creates an identity directory repository binder
func NewStore() storekit.Binder[Repo] { return Store{} }

// Bind binds a store client to the Repo implementation
func (Store) Bind(c storekit.Client) Repo { return &queries{c: c} }

func (r *queries) TopUsers(ctx context.Context, limit int) (appwrite.UserList, error) {
	return r.c.Users().List(ctx, []appwrite.Query{appwrite.Limit(limit)})
}
