package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/policy"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// UserService implements team management. Every mutation of another account
// runs through the management policy first.
type UserService struct {
	users    ports.UserRepository
	activity ports.ActivityRepository
	auth     *policy.Authorizer
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, activity ports.ActivityRepository, auth *policy.Authorizer, logger zerolog.Logger) *UserService {
	return &UserService{users: users, activity: activity, auth: auth, logger: logger}
}

// CreateUser adds a member to the organization. Only actors holding the
// MANAGE_TEAM capability (Owner/Admin via tier override) may create users,
// and at most one Owner account may exist.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	actor, err := s.users.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !s.auth.CanUserDo(actor, domain.ActionManageTeam) {
		return nil, domain.ErrForbidden
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || !domain.KnownTier(input.Tier) {
		return nil, domain.ErrInvalidInput
	}

	if input.Tier == domain.TierOwner {
		owners, err := s.users.CountByTier(ctx, domain.TierOwner)
		if err != nil {
			return nil, err
		}
		if owners > 0 {
			return nil, domain.ErrOwnerExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Tier:           input.Tier,
		FunctionalRole: input.FunctionalRole,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "user_created",
		TargetID:   created.ID,
		OccurredAt: now,
	})
	s.logger.Info().Str("user_id", created.ID).Str("tier", string(created.Tier)).Msg("user created")
	return created, nil
}

// ChangeUserRole updates the target's tier and functional role.
func (s *UserService) ChangeUserRole(ctx context.Context, input ports.ChangeUserRoleInput) (*domain.User, error) {
	actor, target, err := s.managedTarget(ctx, input.ActorID, input.TargetID)
	if err != nil {
		return nil, err
	}

	if !domain.KnownTier(input.Tier) {
		return nil, domain.ErrInvalidInput
	}
	// Promoting anyone to Owner would bypass the single-Owner invariant.
	if input.Tier == domain.TierOwner {
		return nil, domain.ErrForbidden
	}

	if err := s.users.UpdateRole(ctx, target.ID, input.Tier, input.FunctionalRole); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "user_role_changed",
		TargetID:   target.ID,
		OccurredAt: now,
	})

	target.Tier = input.Tier
	target.FunctionalRole = input.FunctionalRole
	target.UpdatedAt = now
	return target, nil
}

// DeactivateUser disables the target account. Accounts are never physically
// deleted; tasks and audit rows keep referencing them.
func (s *UserService) DeactivateUser(ctx context.Context, actorID, targetID string) error {
	actor, target, err := s.managedTarget(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	if err := s.users.SetActive(ctx, target.ID, false); err != nil {
		return err
	}

	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "user_deactivated",
		TargetID:   target.ID,
		OccurredAt: time.Now().UTC(),
	})
	s.logger.Info().Str("user_id", target.ID).Str("actor_id", actor.ID).Msg("user deactivated")
	return nil
}

// ListTeam returns every member. The roster itself is not visibility-scoped;
// management affordances on it are gated per target by the caller.
func (s *UserService) ListTeam(ctx context.Context, actorID string) ([]*domain.User, error) {
	if _, err := s.users.FindByID(ctx, actorID); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// managedTarget loads both parties and applies the management policy.
func (s *UserService) managedTarget(ctx context.Context, actorID, targetID string) (*domain.User, *domain.User, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	if !s.auth.CanManageTargetUser(actor, target) {
		return nil, nil, domain.ErrForbidden
	}
	return actor, target, nil
}

func (s *UserService) appendActivity(ctx context.Context, entry *domain.ActivityEntry) {
	if err := s.activity.Append(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("target_id", entry.TargetID).Msg("failed to append activity entry")
	}
}
