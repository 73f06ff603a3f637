package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/policy"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// ClientService manages agency clients. Reads are visibility-scoped: a
// non-privileged member only sees the clients their tasks point at.
type ClientService struct {
	clients ports.ClientRepository
	tasks   ports.TaskRepository
	users   ports.UserRepository
	auth    *policy.Authorizer
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, tasks ports.TaskRepository, users ports.UserRepository, auth *policy.Authorizer, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, tasks: tasks, users: users, auth: auth, logger: logger}
}

func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	actor, err := s.users.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !s.auth.CanUserDo(actor, domain.ActionCreateClient) {
		return nil, domain.ErrForbidden
	}

	client := &domain.Client{
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.clients.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

// ListClients loads the full client and task collections, then filters them
// in memory. Client visibility is derived from task relationships on every
// call; nothing is cached.
func (s *ClientService) ListClients(ctx context.Context, actorID string) ([]*domain.Client, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisibleClients(actor, clients, tasks), nil
}
