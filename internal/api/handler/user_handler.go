package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// UserHandler exposes the team management endpoints.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.CreateUser(c.Request().Context(), ports.CreateUserInput{
		ActorID:        actor,
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Tier:           domain.Tier(req.Tier),
		FunctionalRole: domain.FunctionalRole(req.FunctionalRole),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	team, err := h.users.ListTeam(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if team == nil {
		team = []*domain.User{}
	}
	return c.JSON(http.StatusOK, team)
}

// ChangeRole handles PATCH /v1/users/:id/role.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req changeUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.ChangeUserRole(c.Request().Context(), ports.ChangeUserRoleInput{
		ActorID:        actor,
		TargetID:       c.Param("id"),
		Tier:           domain.Tier(req.Tier),
		FunctionalRole: domain.FunctionalRole(req.FunctionalRole),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Deactivate handles DELETE /v1/users/:id. Accounts are disabled, never
// removed, so the audit trail keeps valid actor references.
func (h *UserHandler) Deactivate(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.users.DeactivateUser(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
