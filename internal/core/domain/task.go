package domain

import "time"

// TaskStatus represents the lifecycle state of a task. The string values are
// stored in task records and referenced by UI labels; they must not change.
type TaskStatus string

const (
	StatusBacklog         TaskStatus = "BACKLOG"
	StatusTodo            TaskStatus = "TODO"
	StatusInProgress      TaskStatus = "IN_PROGRESS"
	StatusWaitingClient   TaskStatus = "WAITING_CLIENT"
	StatusWaitingApproval TaskStatus = "WAITING_APPROVAL"
	StatusDone            TaskStatus = "DONE"
	StatusCancelled       TaskStatus = "CANCELLED"
)

// TaskPriority classifies how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// validTransitions defines the allowed state machine transitions.
// DONE and CANCELLED have no outgoing edges: they are terminal.
// Any non-terminal state may additionally move to CANCELLED
// (administrative cancellation, authorization enforced by the caller).
var validTransitions = map[TaskStatus][]TaskStatus{
	StatusBacklog:         {StatusTodo, StatusCancelled},
	StatusTodo:            {StatusInProgress, StatusCancelled},
	StatusInProgress:      {StatusWaitingApproval, StatusWaitingClient, StatusCancelled},
	StatusWaitingApproval: {StatusDone, StatusInProgress, StatusCancelled},
	StatusWaitingClient:   {StatusDone, StatusInProgress, StatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s TaskStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// KnownStatus reports whether s is one of the defined statuses.
func KnownStatus(s TaskStatus) bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusWaitingClient,
		StatusWaitingApproval, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Task is the unit of work assigned to agency members on behalf of a client.
type Task struct {
	ID               string       `json:"id" bson:"_id,omitempty"`
	ClientID         string       `json:"client_id" bson:"client_id"`
	ProjectID        string       `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Title            string       `json:"title" bson:"title"`
	Status           TaskStatus   `json:"status" bson:"status"`
	Priority         TaskPriority `json:"priority" bson:"priority"`
	Type             string       `json:"type,omitempty" bson:"type,omitempty"`
	AssignedToUserID string       `json:"assigned_to_user_id,omitempty" bson:"assigned_to_user_id,omitempty"`
	CreatedByUserID  string       `json:"created_by_user_id" bson:"created_by_user_id"`
	DueDate          time.Time    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" bson:"updated_at"`
}
