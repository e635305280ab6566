package handler

import (
	"context"

	"github.com/idaccess/identity-service/internal/core/domain"
)

// Function-backed stubs for the service ports; tests set only the calls they
// expect, anything else panics on a nil func.

type stubUserService struct {
	createUserFn      func(ctx context.Context, user *domain.User, password string, role *domain.Role) error
	updateUserFn      func(ctx context.Context, user *domain.User, role *domain.Role) error
	deleteUserFn      func(ctx context.Context, userID string) error
	getUserByIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	getUserByNameFn   func(ctx context.Context, username string) (*domain.User, error)
	getUserRolesFn    func(ctx context.Context, user *domain.User) ([]string, error)
	listUsersInRoleFn func(ctx context.Context, roleName string) ([]*domain.User, error)
	loginFn           func(ctx context.Context, username, password string) (*domain.Token, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, user *domain.User, password string, role *domain.Role) error {
	return s.createUserFn(ctx, user, password, role)
}

func (s *stubUserService) UpdateUser(ctx context.Context, user *domain.User, role *domain.Role) error {
	return s.updateUserFn(ctx, user, role)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteUserFn(ctx, userID)
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUserByIDFn(ctx, userID)
}

func (s *stubUserService) GetUserByName(ctx context.Context, username string) (*domain.User, error) {
	return s.getUserByNameFn(ctx, username)
}

func (s *stubUserService) GetUserRoles(ctx context.Context, user *domain.User) ([]string, error) {
	return s.getUserRolesFn(ctx, user)
}

func (s *stubUserService) ListUsersInRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	return s.listUsersInRoleFn(ctx, roleName)
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	return s.loginFn(ctx, username, password)
}

type stubRoleService struct {
	createRoleFn func(ctx context.Context, name string) (*domain.Role, error)
	getRoleFn    func(ctx context.Context, name string) (*domain.Role, error)
}

func (s *stubRoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.createRoleFn(ctx, name)
}

func (s *stubRoleService) GetRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.getRoleFn(ctx, name)
}
