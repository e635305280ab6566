package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/idaccess/identity-service/internal/api/metrics"
	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/ports"
)

type RoleHandler struct {
	roles ports.RoleService
	users ports.UserService
}

func NewRoleHandler(roles ports.RoleService, users ports.UserService) *RoleHandler {
	return &RoleHandler{roles: roles, users: users}
}

type createRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateRole registers a new role. Administrator only.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      createRoleRequest  true  "Role name"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /roles [post]
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := h.roles.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	metrics.RolesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, role)
}

// ListUsers returns the users currently holding a role. Administrator only.
//
// @Summary      List users in a role
// @Tags         roles
// @Produce      json
// @Param        name  path      string  true  "Role name"
// @Success      200   {array}   domain.User
// @Failure      404   {object}  map[string]string
// @Router       /roles/{name}/users [get]
func (h *RoleHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("name")

	role, err := h.roles.GetRole(ctx, name)
	if err != nil {
		return err
	}

	users, err := h.users.ListUsersInRole(ctx, role.Name)
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}

	return c.JSON(http.StatusOK, users)
}
