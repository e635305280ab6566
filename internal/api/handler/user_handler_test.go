package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/idaccess/identity-service/internal/core/domain"
)

func TestUserHandler_GetRoles_Success(t *testing.T) {
	users := &stubUserService{
		getUserByNameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Username: username}, nil
		},
		getUserRolesFn: func(ctx context.Context, user *domain.User) ([]string, error) {
			return []string{"Operator", "Auditor"}, nil
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, rec := newTestContext(t, http.MethodGet, "/users/alice/roles", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.GetRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var roles []string
	if err := json.Unmarshal(rec.Body.Bytes(), &roles); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if want := []string{"Operator", "Auditor"}; !reflect.DeepEqual(roles, want) {
		t.Fatalf("expected %v, got %v", want, roles)
	}
}

func TestUserHandler_GetRoles_UnknownUser(t *testing.T) {
	users := &stubUserService{
		getUserByNameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, rec := newTestContext(t, http.MethodGet, "/users/ghost/roles", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	if err := h.GetRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_GetRoles_EmptyIsArray(t *testing.T) {
	users := &stubUserService{
		getUserByNameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Username: username}, nil
		},
		getUserRolesFn: func(ctx context.Context, user *domain.User) ([]string, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, rec := newTestContext(t, http.MethodGet, "/users/alice/roles", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.GetRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	var updated *domain.User
	var newRole string
	users := &stubUserService{
		getUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Username: "alice", Email: "old@example.com"}, nil
		},
		updateUserFn: func(ctx context.Context, user *domain.User, role *domain.Role) error {
			updated = user
			newRole = role.Name
			return nil
		},
	}
	roles := &stubRoleService{
		getRoleFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return &domain.Role{Name: name}, nil
		},
	}
	h := NewUserHandler(users, roles)

	c, rec := newTestContext(t, http.MethodPut, "/users/u-1", `{"email":"new@example.com","role":"Auditor"}`)
	c.SetParamNames("id")
	c.SetParamValues("u-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if updated == nil || updated.Email != "new@example.com" {
		t.Fatalf("unexpected user: %+v", updated)
	}
	if newRole != "Auditor" {
		t.Fatalf("unexpected role: %s", newRole)
	}
}

func TestUserHandler_Update_UnknownUser(t *testing.T) {
	users := &stubUserService{
		getUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, _ := newTestContext(t, http.MethodPut, "/users/missing", `{"role":"Auditor"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	var deleted string
	users := &stubUserService{
		deleteUserFn: func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, rec := newTestContext(t, http.MethodDelete, "/users/u-1", "")
	c.SetParamNames("id")
	c.SetParamValues("u-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "u-1" {
		t.Fatalf("unexpected id: %s", deleted)
	}
}

func TestUserHandler_Delete_UnknownUser(t *testing.T) {
	users := &stubUserService{
		deleteUserFn: func(ctx context.Context, userID string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users, &stubRoleService{})

	c, _ := newTestContext(t, http.MethodDelete, "/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
