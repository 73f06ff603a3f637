package ports

import (
	"context"
	"time"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task.
// ActorID identifies the authenticated user making the request.
type CreateTaskInput struct {
	ActorID          string
	ClientID         string
	ProjectID        string
	Title            string
	Priority         string
	Type             string
	AssignedToUserID string
	DueDate          time.Time
}

// ChangeStatusInput requests a workflow transition on a task.
type ChangeStatusInput struct {
	ActorID   string
	TaskID    string
	NewStatus domain.TaskStatus
}

// ReassignTaskInput moves a task to a different assignee.
type ReassignTaskInput struct {
	ActorID          string
	TaskID           string
	AssignedToUserID string
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, actorID, taskID string) (*domain.Task, error)
	// ListTasks returns the tasks visible to the actor, in stored order.
	ListTasks(ctx context.Context, actorID string) ([]*domain.Task, error)
	ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Task, error)
	Reassign(ctx context.Context, input ReassignTaskInput) (*domain.Task, error)
	// ListActivity returns the audit trail of a task visible to the actor.
	ListActivity(ctx context.Context, actorID, taskID string) ([]*domain.ActivityEntry, error)
}

// CreateClientInput carries the data for a new agency client.
type CreateClientInput struct {
	ActorID      string
	Name         string
	ContactEmail string
	ContactPhone string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	// ListClients returns the clients visible to the actor, derived from
	// task assignments for non-privileged tiers.
	ListClients(ctx context.Context, actorID string) ([]*domain.Client, error)
}
