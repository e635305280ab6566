package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/idaccess/identity-service/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
	roles ports.RoleService
}

func NewUserHandler(users ports.UserService, roles ports.RoleService) *UserHandler {
	return &UserHandler{users: users, roles: roles}
}

type updateUserRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"  validate:"required"`
}

// GetRoles returns the role names a user currently holds.
//
// @Summary      Get a user's roles
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {array}   string
// @Failure      404       {object}  map[string]string
// @Router       /users/{username}/roles [get]
func (h *UserHandler) GetRoles(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.GetUserByName(ctx, c.Param("username"))
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}

	roles, err := h.users.GetUserRoles(ctx, user)
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []string{}
	}

	return c.JSON(http.StatusOK, roles)
}

// Update changes a user's attributes and swaps their role. Administrator only.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "New attributes and role"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	user, err := h.users.GetUserByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	role, err := h.roles.GetRole(ctx, req.Role)
	if err != nil {
		return err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if err := h.users.UpdateUser(ctx, user, role); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user account. Administrator only.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
