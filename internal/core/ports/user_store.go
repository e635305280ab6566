package ports

import (
	"context"

	"github.com/idaccess/identity-service/internal/core/domain"
)

// UserStore is the persistence boundary for accounts and their role
// memberships. Create receives the plaintext password because hashing and
// password policy belong to the store/hasher pair, not to the service.
// Single calls are atomic; multi-call sequences are not transactional.
type UserStore interface {
	Create(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByName(ctx context.Context, username string) (*domain.User, error)
	RolesOf(ctx context.Context, user *domain.User) ([]string, error)
	UsersInRole(ctx context.Context, roleName string) ([]*domain.User, error)
	AddUserToRole(ctx context.Context, user *domain.User, roleName string) error
	RemoveUserFromRole(ctx context.Context, user *domain.User, roleName string) error
}
