package domain

import "fmt"

// Workflow validates and applies task status transitions. It knows nothing
// about users; authorization for a requested transition is layered on by the
// caller before ApplyTransition is invoked.
type Workflow struct {
	allowReopen bool
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*Workflow)

// WithReopen permits transitions out of DONE and CANCELLED back to
// IN_PROGRESS, for organizations that want an explicit reopen flow.
func WithReopen() WorkflowOption {
	return func(w *Workflow) { w.allowReopen = true }
}

// NewWorkflow returns a Workflow. By default terminal states are sealed:
// no transition may originate from DONE or CANCELLED.
func NewWorkflow(opts ...WorkflowOption) *Workflow {
	w := &Workflow{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ApplyTransition returns a copy of the task moved to next, or
// ErrInvalidTransition when the move is not legal from the task's current
// status. The input task is never mutated.
func (w *Workflow) ApplyTransition(t Task, next TaskStatus) (Task, error) {
	if !KnownStatus(next) {
		return t, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	if t.Status.Terminal() {
		if w.allowReopen && next == StatusInProgress {
			t.Status = next
			return t, nil
		}
		return t, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, t.Status)
	}

	if !t.Status.CanTransitionTo(next) {
		return t, fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, t.Status, next)
	}

	t.Status = next
	return t, nil
}
