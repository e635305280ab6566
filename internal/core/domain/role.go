package domain

import "errors"

var ErrRoleNotFound = errors.New("role not found")
var ErrDuplicateRole = errors.New("role already exists")
var ErrEmptyRoleName = errors.New("role name cannot be empty")

// Role is a named grant. Roles are create-only: nothing in this service
// renames or deletes one once it exists.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
