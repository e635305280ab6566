package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/idaccess/identity-service/internal/core/domain"
)

func TestRoleHandler_CreateRole_Success(t *testing.T) {
	roles := &stubRoleService{
		createRoleFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return &domain.Role{ID: "r-1", Name: name}, nil
		},
	}
	h := NewRoleHandler(roles, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/roles", `{"name":"Auditor"}`)
	if err := h.CreateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var role domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &role); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if role.Name != "Auditor" {
		t.Fatalf("unexpected role: %+v", role)
	}
}

func TestRoleHandler_CreateRole_DuplicatePropagates(t *testing.T) {
	roles := &stubRoleService{
		createRoleFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return nil, domain.ErrDuplicateRole
		},
	}
	h := NewRoleHandler(roles, &stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/roles", `{"name":"Auditor"}`)
	if err := h.CreateRole(c); !errors.Is(err, domain.ErrDuplicateRole) {
		t.Fatalf("expected ErrDuplicateRole to propagate, got %v", err)
	}
}

func TestRoleHandler_CreateRole_MissingName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{}, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/roles", `{}`)
	if err := h.CreateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoleHandler_ListUsers_UnknownRole(t *testing.T) {
	roles := &stubRoleService{
		getRoleFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return nil, domain.ErrRoleNotFound
		},
	}
	h := NewRoleHandler(roles, &stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/roles/Nope/users", "")
	c.SetParamNames("name")
	c.SetParamValues("Nope")

	if err := h.ListUsers(c); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound to propagate, got %v", err)
	}
}

func TestRoleHandler_ListUsers_EmptyIsArray(t *testing.T) {
	roles := &stubRoleService{
		getRoleFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return &domain.Role{ID: "r-1", Name: name}, nil
		},
	}
	users := &stubUserService{
		listUsersInRoleFn: func(ctx context.Context, roleName string) ([]*domain.User, error) {
			return nil, nil
		},
	}
	h := NewRoleHandler(roles, users)

	c, rec := newTestContext(t, http.MethodGet, "/roles/Auditor/users", "")
	c.SetParamNames("name")
	c.SetParamValues("Auditor")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
