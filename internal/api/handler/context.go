package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user ID injected by the Auth middleware
// and performs a fast-fail check before any service call: a missing or empty
// user_id claim means the middleware did not run or the token is unusable.
func actorID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
