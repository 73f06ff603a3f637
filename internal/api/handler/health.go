package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler answers liveness probes. It never touches dependencies.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler answers readiness probes by pinging MongoDB and
// Redis with a short timeout.
type HealthDependenciesHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, rdb: rdb}
}

// Readiness reports whether the backing stores are reachable. Any failing
// dependency turns the response into a 503 with per-dependency detail.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	deps := map[string]string{"mongo": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		deps["mongo"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		deps["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	status := "ready"
	if code != http.StatusOK {
		status = "degraded"
	}
	return c.JSON(code, map[string]any{"status": status, "dependencies": deps})
}
