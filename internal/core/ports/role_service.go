package ports

import (
	"context"

	"github.com/idaccess/identity-service/internal/core/domain"
)

// RoleService manages the role lifecycle. Roles are created and looked up,
// never renamed or deleted.
type RoleService interface {
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
	GetRole(ctx context.Context, name string) (*domain.Role, error)
}
