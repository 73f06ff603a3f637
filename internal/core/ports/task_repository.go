package ports

import (
	"context"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns the full task collection. Visibility filtering happens
	// in memory in the service layer, not in the query.
	List(ctx context.Context) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	UpdateAssignee(ctx context.Context, id string, assignedToUserID string) error
}

// ClientRepository defines persistence operations for agency clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}
