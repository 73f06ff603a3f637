package ports

import (
	"context"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

// CreateUserInput carries the data for a new organization member.
type CreateUserInput struct {
	ActorID        string
	Name           string
	Email          string
	Password       string
	Tier           domain.Tier
	FunctionalRole domain.FunctionalRole
}

// ChangeUserRoleInput updates a member's tier and/or functional role.
type ChangeUserRoleInput struct {
	ActorID        string
	TargetID       string
	Tier           domain.Tier
	FunctionalRole domain.FunctionalRole
}

// UserService defines use-case operations for team management. Every
// mutating operation is gated by the management policy.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ChangeUserRole(ctx context.Context, input ChangeUserRoleInput) (*domain.User, error)
	DeactivateUser(ctx context.Context, actorID, targetID string) error
	ListTeam(ctx context.Context, actorID string) ([]*domain.User, error)
}

// AuthService authenticates members and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
