package domain

import (
	"errors"
	"time"
)

// RoleAdministrator gates role administration. Tokens must carry this role
// claim to create roles or manage other accounts.
const RoleAdministrator = "Administrator"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserCreationFailed = errors.New("user creation failed")
var ErrUserUpdateFailed = errors.New("user update failed")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrWeakPassword = errors.New("password does not meet the minimum requirements")
var ErrStoreUnavailable = errors.New("credential store unavailable")

// User models an account held in the credential store. The password hash is
// owned by the store/hasher pair and never serialized out.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
