package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// ClientHandler exposes the agency client endpoints.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Create handles POST /v1/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.CreateClient(c.Request().Context(), ports.CreateClientInput{
		ActorID:      actor,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// List handles GET /v1/clients. Non-privileged tiers only receive the
// clients reachable through their own tasks.
func (h *ClientHandler) List(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	clients, err := h.clients.ListClients(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if clients == nil {
		clients = []*domain.Client{}
	}
	return c.JSON(http.StatusOK, clients)
}
