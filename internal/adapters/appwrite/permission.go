package appwrite

import "fmt"

// Permission strings attach per-document grants at create time.
// The backend enforces them; this service only has to set them correctly

// RoleAny is the role matching any visitor, authenticated or not
func RoleAny() string { return "any" }

// RoleUser is the role matching a single user id
func RoleUser(id string) string { return fmt.Sprintf("user:%s", id) }

// PermissionRead grants read to a role
func PermissionRead(role string) string { return fmt.Sprintf(`read("%s")`, role) }

// PermissionUpdate grants update to a role
func PermissionUpdate(role string) string { return fmt.Sprintf(`update("%s")`, role) }

// PermissionDelete grants delete to a role
func PermissionDelete(role string) string { return fmt.Sprintf(`delete("%s")`, role) }
