package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencyhub/agency-api/internal/api/metrics"
	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/policy"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// TaskService runs the task workflow: creation, visibility-scoped reads, and
// status transitions. Each transition goes through the same pipeline:
// visibility check, authorization check, state machine validation, persist,
// audit, notify.
type TaskService struct {
	tasks    ports.TaskRepository
	clients  ports.ClientRepository
	users    ports.UserRepository
	activity ports.ActivityRepository
	notifier ports.NotificationEnqueuer
	auth     *policy.Authorizer
	workflow *domain.Workflow
	logger   zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	clients ports.ClientRepository,
	users ports.UserRepository,
	activity ports.ActivityRepository,
	notifier ports.NotificationEnqueuer,
	auth *policy.Authorizer,
	workflow *domain.Workflow,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		clients:  clients,
		users:    users,
		activity: activity,
		notifier: notifier,
		auth:     auth,
		workflow: workflow,
		logger:   logger,
	}
}

// CreateTask creates a task in TODO. BACKLOG exists as a status but tasks
// are never created there; the board moves work straight into TODO.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	actor, err := s.activeActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !s.auth.CanUserDo(actor, domain.ActionCreateTask) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	priority := domain.TaskPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ClientID:         input.ClientID,
		ProjectID:        input.ProjectID,
		Title:            input.Title,
		Status:           domain.StatusTodo,
		Priority:         priority,
		Type:             input.Type,
		AssignedToUserID: input.AssignedToUserID,
		CreatedByUserID:  actor.ID,
		DueDate:          input.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(created.Priority)).Inc()
	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "task_created",
		TaskID:     created.ID,
		ToStatus:   string(created.Status),
		OccurredAt: now,
	})

	if created.AssignedToUserID != "" && created.AssignedToUserID != actor.ID {
		s.notifier.Enqueue(ports.NotificationInput{
			TaskID:      created.ID,
			TaskTitle:   created.Title,
			RecipientID: created.AssignedToUserID,
			Status:      string(created.Status),
			ActorID:     actor.ID,
			Timestamp:   now,
		})
	}

	s.logger.Info().Str("task_id", created.ID).Str("client_id", created.ClientID).Msg("task created")
	return created, nil
}

// GetTask returns a single task if the actor may see it. Invisible tasks are
// reported as not found so their existence does not leak.
func (s *TaskService) GetTask(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	actor, err := s.activeActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeTask(actor, task) {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// ListTasks returns the tasks visible to the actor, preserving stored order.
func (s *TaskService) ListTasks(ctx context.Context, actorID string) ([]*domain.Task, error) {
	actor, err := s.activeActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisibleTasks(actor, all), nil
}

// ChangeStatus applies a workflow transition on behalf of the actor.
//
// Authorization is layered in front of the state machine, never inside it:
//   - the actor must be able to see the task at all;
//   - CANCELLED requires Owner or Admin tier;
//   - DONE (approval) requires the APPROVE_WORK permission.
func (s *TaskService) ChangeStatus(ctx context.Context, input ports.ChangeStatusInput) (*domain.Task, error) {
	actor, err := s.activeActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeTask(actor, task) {
		return nil, domain.ErrTaskNotFound
	}

	switch input.NewStatus {
	case domain.StatusCancelled:
		if actor.Tier != domain.TierOwner && actor.Tier != domain.TierAdmin {
			return nil, domain.ErrForbidden
		}
	case domain.StatusDone:
		if !s.auth.CanUserDo(actor, domain.ActionApproveWork) {
			return nil, domain.ErrForbidden
		}
	}

	updated, err := s.workflow.ApplyTransition(*task, input.NewStatus)
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return nil, fmt.Errorf("change status: %w", err)
	}

	if err := s.tasks.UpdateStatus(ctx, task.ID, updated.Status); err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("update_failed").Inc()
		return nil, fmt.Errorf("change status: persist: %w", err)
	}

	now := time.Now().UTC()
	updated.UpdatedAt = now
	metrics.TransitionsAppliedTotal.WithLabelValues(string(task.Status), string(updated.Status)).Inc()

	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "status_changed",
		TaskID:     task.ID,
		FromStatus: string(task.Status),
		ToStatus:   string(updated.Status),
		OccurredAt: now,
	})
	s.notifyParticipants(&updated, actor.ID, now)

	s.logger.Info().
		Str("task_id", task.ID).
		Str("from", string(task.Status)).
		Str("to", string(updated.Status)).
		Str("actor_id", actor.ID).
		Msg("task status changed")

	return &updated, nil
}

// Reassign moves a task to a new assignee.
func (s *TaskService) Reassign(ctx context.Context, input ports.ReassignTaskInput) (*domain.Task, error) {
	actor, err := s.activeActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeTask(actor, task) {
		return nil, domain.ErrTaskNotFound
	}

	if input.AssignedToUserID != "" {
		if _, err := s.users.FindByID(ctx, input.AssignedToUserID); err != nil {
			return nil, fmt.Errorf("reassign: %w", err)
		}
	}

	if err := s.tasks.UpdateAssignee(ctx, task.ID, input.AssignedToUserID); err != nil {
		return nil, fmt.Errorf("reassign: persist: %w", err)
	}

	now := time.Now().UTC()
	updated := *task
	updated.AssignedToUserID = input.AssignedToUserID
	updated.UpdatedAt = now

	s.appendActivity(ctx, &domain.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "task_reassigned",
		TaskID:     task.ID,
		TargetID:   input.AssignedToUserID,
		OccurredAt: now,
	})
	if input.AssignedToUserID != "" && input.AssignedToUserID != actor.ID {
		s.notifier.Enqueue(ports.NotificationInput{
			TaskID:      task.ID,
			TaskTitle:   task.Title,
			RecipientID: input.AssignedToUserID,
			Status:      string(task.Status),
			ActorID:     actor.ID,
			Timestamp:   now,
		})
	}

	return &updated, nil
}

// ListActivity returns the audit trail of a task the actor may see.
func (s *TaskService) ListActivity(ctx context.Context, actorID, taskID string) ([]*domain.ActivityEntry, error) {
	actor, err := s.activeActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeTask(actor, task) {
		return nil, domain.ErrTaskNotFound
	}

	return s.activity.ListForTask(ctx, taskID)
}

// activeActor loads the acting user and refuses disabled accounts.
func (s *TaskService) activeActor(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Active {
		return nil, domain.ErrUserDisabled
	}
	return actor, nil
}

// appendActivity writes an audit row. Audit failures are logged, never fatal.
func (s *TaskService) appendActivity(ctx context.Context, entry *domain.ActivityEntry) {
	if err := s.activity.Append(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("task_id", entry.TaskID).Msg("failed to append activity entry")
	}
}

// notifyParticipants enqueues a status notification for the assignee and the
// creator, skipping the actor and duplicate recipients.
func (s *TaskService) notifyParticipants(task *domain.Task, actorID string, ts time.Time) {
	seen := map[string]struct{}{actorID: {}, "": {}}
	for _, recipient := range []string{task.AssignedToUserID, task.CreatedByUserID} {
		if _, dup := seen[recipient]; dup {
			continue
		}
		seen[recipient] = struct{}{}
		s.notifier.Enqueue(ports.NotificationInput{
			TaskID:      task.ID,
			TaskTitle:   task.Title,
			RecipientID: recipient,
			Status:      string(task.Status),
			ActorID:     actorID,
			Timestamp:   ts,
		})
	}
}
