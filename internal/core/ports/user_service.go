package ports

import (
	"context"

	"github.com/idaccess/identity-service/internal/core/domain"
)

// UserService manages the account lifecycle, role membership, and
// credential exchange.
type UserService interface {
	// CreateUser persists the user (the store hashes the password) and then
	// assigns role. The two steps are not transactional: a failed assignment
	// leaves the created user in place without the intended role.
	CreateUser(ctx context.Context, user *domain.User, password string, role *domain.Role) error
	// UpdateUser persists the attribute changes, then swaps the user's first
	// persisted role for role.
	UpdateUser(ctx context.Context, user *domain.User, role *domain.Role) error
	DeleteUser(ctx context.Context, userID string) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetUserByName returns (nil, nil) when no such user exists; absence is a
	// normal outcome for existence probes, not an error.
	GetUserByName(ctx context.Context, username string) (*domain.User, error)
	GetUserRoles(ctx context.Context, user *domain.User) ([]string, error)
	ListUsersInRole(ctx context.Context, roleName string) ([]*domain.User, error)
	// Login exchanges credentials for a signed bearer token carrying the
	// user's current roles.
	Login(ctx context.Context, username, password string) (*domain.Token, error)
}
