package domain

import (
	"errors"
	"testing"
)

func TestCanTransitionTo_Table(t *testing.T) {
	cases := []struct {
		from TaskStatus
		to   TaskStatus
		want bool
	}{
		{StatusBacklog, StatusTodo, true},
		{StatusBacklog, StatusCancelled, true},
		{StatusBacklog, StatusInProgress, false},
		{StatusTodo, StatusInProgress, true},
		{StatusTodo, StatusDone, false},
		{StatusInProgress, StatusWaitingApproval, true},
		{StatusInProgress, StatusWaitingClient, true},
		{StatusInProgress, StatusDone, false},
		{StatusWaitingApproval, StatusDone, true},
		{StatusWaitingApproval, StatusInProgress, true},
		{StatusWaitingApproval, StatusWaitingClient, false},
		{StatusWaitingClient, StatusDone, true},
		{StatusWaitingClient, StatusInProgress, true},
		{StatusTodo, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusWaitingApproval, StatusCancelled, true},
		{StatusWaitingClient, StatusCancelled, true},
		{StatusDone, StatusInProgress, false},
		{StatusDone, StatusCancelled, false},
		{StatusCancelled, StatusTodo, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestApplyTransition_Success(t *testing.T) {
	w := NewWorkflow()
	task := Task{ID: "t-1", Status: StatusWaitingApproval}

	updated, err := w.ApplyTransition(task, StatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusDone {
		t.Errorf("expected status %s, got %s", StatusDone, updated.Status)
	}
	// Input must not be mutated.
	if task.Status != StatusWaitingApproval {
		t.Errorf("input task mutated: %s", task.Status)
	}
}

func TestApplyTransition_TerminalStatesAreSealed(t *testing.T) {
	w := NewWorkflow()
	task := Task{ID: "t-1", Status: StatusWaitingApproval}

	done, err := w.ApplyTransition(task, StatusDone)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	_, err = w.ApplyTransition(done, StatusInProgress)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of DONE, got %v", err)
	}

	cancelled := Task{ID: "t-2", Status: StatusCancelled}
	_, err = w.ApplyTransition(cancelled, StatusTodo)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of CANCELLED, got %v", err)
	}
}

func TestApplyTransition_ReopenAllowedWhenConfigured(t *testing.T) {
	w := NewWorkflow(WithReopen())
	task := Task{ID: "t-1", Status: StatusDone}

	updated, err := w.ApplyTransition(task, StatusInProgress)
	if err != nil {
		t.Fatalf("reopen should be allowed: %v", err)
	}
	if updated.Status != StatusInProgress {
		t.Errorf("expected IN_PROGRESS, got %s", updated.Status)
	}

	// Reopen only targets IN_PROGRESS; anything else stays sealed.
	if _, err := w.ApplyTransition(task, StatusTodo); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for DONE -> TODO, got %v", err)
	}
}

func TestApplyTransition_UnknownStatus(t *testing.T) {
	w := NewWorkflow()
	task := Task{ID: "t-1", Status: StatusTodo}

	if _, err := w.ApplyTransition(task, TaskStatus("ARCHIVED")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
}

func TestApplyTransition_SkippingStatesRejected(t *testing.T) {
	w := NewWorkflow()
	task := Task{ID: "t-1", Status: StatusTodo}

	if _, err := w.ApplyTransition(task, StatusDone); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for TODO -> DONE, got %v", err)
	}
}
