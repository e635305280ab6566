package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/ports"
)

// RoleService implements role creation and lookup.
type RoleService struct {
	store ports.RoleStore
	log   zerolog.Logger
}

func NewRoleService(store ports.RoleStore, log zerolog.Logger) *RoleService {
	return &RoleService{store: store, log: log}
}

// CreateRole persists a new role after an exists-by-name check. The check is
// advisory under concurrent creates; the store's uniqueness constraint is the
// final arbiter and a losing writer also surfaces ErrDuplicateRole.
func (s *RoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	if name == "" {
		return nil, domain.ErrEmptyRoleName
	}

	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("role exists check: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRole
	}

	role, err := s.store.Create(ctx, &domain.Role{Name: name})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("role", role.Name).Msg("role created")
	return role, nil
}

// GetRole looks a role up by its exact name.
func (s *RoleService) GetRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.store.FindByName(ctx, name)
}
