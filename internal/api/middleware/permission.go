package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/policy"
)

// Permission gates a route on a single permission-table action. The identity
// comes from the claims the Auth middleware stored in context, so no lookup
// is needed here; services still re-check against the stored user.
func Permission(auth *policy.Authorizer, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := actorFromClaims(c)
			if actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !auth.CanUserDo(actor, action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireTier gates a route on the actor's global tier.
func RequireTier(tiers ...domain.Tier) echo.MiddlewareFunc {
	allowed := make(map[domain.Tier]struct{}, len(tiers))
	for _, t := range tiers {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := actorFromClaims(c)
			if actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[actor.Tier]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// actorFromClaims rebuilds a minimal user from the token claims. Returns nil
// when the claims are absent, which means the Auth middleware did not run.
func actorFromClaims(c echo.Context) *domain.User {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return nil
	}
	tier, _ := c.Get("tier").(string)
	role, _ := c.Get("functional_role").(string)
	return &domain.User{
		ID:             id,
		Tier:           domain.Tier(tier),
		FunctionalRole: domain.FunctionalRole(role),
	}
}
