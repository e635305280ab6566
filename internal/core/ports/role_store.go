package ports

import (
	"context"

	"github.com/idaccess/identity-service/internal/core/domain"
)

// RoleStore is the persistence boundary for roles. Create must enforce name
// uniqueness and return domain.ErrDuplicateRole on violation; the service's
// exists pre-check is advisory under concurrent creates.
type RoleStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
