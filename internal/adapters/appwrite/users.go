package appwrite

import (
	"context"
	"net/http"
)

// Users is the identity directory surface. Records are owned by the backend;
// we only read projections of them
type Users struct{ c *Client }

// User is the subset of an identity record the API consumes
type User struct {
	ID        string         `json:"$id"`
	Name      string         `json:"name"`
	UpdatedAt string         `json:"$updatedAt"`
	Prefs     map[string]any `json:"prefs"`
}

// UserList is a page of users plus the directory's total count
type UserList struct {
	Total int    `json:"total"`
	Users []User `json:"users"`
}

// Reputation reads the reputation preference, defaulting to zero
// prefs are schemaless so the value arrives as a JSON number
func (u User) Reputation() int {
	switch v := u.Prefs["reputation"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Get fetches a single user record by id
func (u *Users) Get(ctx context.Context, id string) (User, error) {
	var out User
	err := u.c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &out)
	return out, err
}

// List runs the given queries against the user directory
func (u *Users) List(ctx context.Context, queries []Query) (UserList, error) {
	var out UserList
	err := u.c.do(ctx, http.MethodGet, "/users", encodeQueries(queries), nil, &out)
	return out, err
}
