package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// NotificationHandler lists the in-app notifications of the caller. It reads
// straight from the repository: notifications are already scoped per
// recipient, so no policy layer is involved.
type NotificationHandler struct {
	notifications ports.NotificationRepository
}

func NewNotificationHandler(notifications ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /v1/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	out, err := h.notifications.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if out == nil {
		out = []*domain.Notification{}
	}
	return c.JSON(http.StatusOK, out)
}
