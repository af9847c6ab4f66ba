// Package storekit provides common helpers for repositories backed by the
// external document store client
package storekit

import "askforge/internal/adapters/appwrite"

// Client is the store handle repositories bind to
type Client = *appwrite.Client

// Binder is a tiny factory that binds a domain repo to a specific store client
type Binder[T any] interface {
	Bind(Client) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Client) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(c Client) T { return f(c) }

// RequireClient panics early on programmer error (nil client)
func RequireClient(c Client) Client {
	if c == nil {
		panic("storekit: nil store client")
	}
	return c
}

// MustBind is a convenience that validates the client then binds
func MustBind[T any](b Binder[T], c Client) T {
	return b.Bind(RequireClient(c))
}
