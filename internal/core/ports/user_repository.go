package ports

import (
	"context"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

// UserRepository defines persistence operations for organization members.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns every user in the organization, active or not.
	List(ctx context.Context) ([]*domain.User, error)
	// CountByTier reports how many users hold the given tier. Used to
	// enforce the single-Owner invariant at creation time.
	CountByTier(ctx context.Context, tier domain.Tier) (int64, error)
	UpdateRole(ctx context.Context, id string, tier domain.Tier, functionalRole domain.FunctionalRole) error
	SetActive(ctx context.Context, id string, active bool) error
}
