package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/ports"
)

// UserService implements account lifecycle, role membership, and login.
type UserService struct {
	store  ports.UserStore
	hasher ports.Hasher
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewUserService(store ports.UserStore, hasher ports.Hasher, tokens *TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{store: store, hasher: hasher, tokens: tokens, log: log}
}

// CreateUser persists the user and then assigns the role as a second store
// call. When the store rejects creation (weak password, duplicate username)
// no role assignment happens. When assignment itself fails the user stays in
// the store without the intended role; compensation is the caller's call.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User, password string, role *domain.Role) error {
	created, err := s.store.Create(ctx, user, password)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUserCreationFailed, err)
	}

	if err := s.store.AddUserToRole(ctx, created, role.Name); err != nil {
		s.log.Error().Err(err).
			Str("username", created.Username).
			Str("role", role.Name).
			Msg("role assignment after create failed, user left without role")
		return fmt.Errorf("assign role %q: %w", role.Name, err)
	}

	s.log.Info().Str("username", created.Username).Str("role", role.Name).Msg("user created")
	return nil
}

// UpdateUser persists the attribute changes, then swaps the user's first
// persisted role for the new one. Only the first element of the current role
// set is revoked; any extra memberships survive the update untouched.
func (s *UserService) UpdateUser(ctx context.Context, user *domain.User, role *domain.Role) error {
	if err := s.store.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUserUpdateFailed, err)
	}

	current, err := s.store.RolesOf(ctx, user)
	if err != nil {
		return fmt.Errorf("read current roles: %w", err)
	}
	if len(current) > 0 {
		if err := s.store.RemoveUserFromRole(ctx, user, current[0]); err != nil {
			return fmt.Errorf("revoke role %q: %w", current[0], err)
		}
	}

	if err := s.store.AddUserToRole(ctx, user, role.Name); err != nil {
		return fmt.Errorf("assign role %q: %w", role.Name, err)
	}

	s.log.Info().Str("username", user.Username).Str("role", role.Name).Msg("user updated")
	return nil
}

// DeleteUser removes the user. The lookup runs first so an unknown id fails
// with ErrUserNotFound before any delete reaches the store.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.FindByID(ctx, userID)
}

// GetUserByName returns (nil, nil) when the user does not exist. Callers use
// this as an existence probe before registration, so absence is a normal
// outcome rather than a failure.
func (s *UserService) GetUserByName(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.store.FindByName(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserRoles(ctx context.Context, user *domain.User) ([]string, error) {
	return s.store.RolesOf(ctx, user)
}

func (s *UserService) ListUsersInRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	return s.store.UsersInRole(ctx, roleName)
}

// Login exchanges credentials for a signed token. Password verification runs
// before any role lookup; a failed check never reveals whether the hash or
// the username was wrong beyond the error text.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	user, err := s.store.FindByName(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.log.Warn().Str("username", username).Msg("password verification failed")
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.store.RolesOf(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("read roles: %w", err)
	}

	token, err := s.tokens.Issue(user.Username, roles, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Int("roles", len(roles)).Msg("login succeeded")
	return token, nil
}
