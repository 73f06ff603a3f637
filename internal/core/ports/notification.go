package ports

import (
	"context"
	"time"
)

// NotificationInput describes a status-change notification to deliver.
type NotificationInput struct {
	TaskID      string
	TaskTitle   string
	RecipientID string
	Status      string
	ActorID     string
	Timestamp   time.Time
}

// NotificationService delivers a single notification (throttled, persisted).
type NotificationService interface {
	Deliver(ctx context.Context, input NotificationInput) error
}

// NotificationEnqueuer hands notifications to the async dispatcher. The task
// service depends on this narrow interface so the workflow pipeline never
// blocks on delivery.
type NotificationEnqueuer interface {
	Enqueue(input NotificationInput)
}
