package ports

import (
	"context"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

// ActivityRepository persists audit rows. Entries are append-only.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	ListForTask(ctx context.Context, taskID string) ([]*domain.ActivityEntry, error)
}

// NotificationRepository persists delivered notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}
