package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultThrottleTTL = 30 * time.Minute

// NotificationThrottle suppresses repeat notifications backed by Redis.
// Key format: notify:<task_id>:<status>:<recipient_id>
type NotificationThrottle struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationThrottle creates a NotificationThrottle wrapping the given
// Redis client. If ttl <= 0, defaultThrottleTTL is used.
func NewNotificationThrottle(client *redis.Client, ttl time.Duration) *NotificationThrottle {
	if ttl <= 0 {
		ttl = defaultThrottleTTL
	}
	return &NotificationThrottle{client: client, ttl: ttl}
}

// IsSuppressed reports whether the same task/status pair was already sent to
// this recipient within the throttle window.
func (t *NotificationThrottle) IsSuppressed(ctx context.Context, taskID, status, recipientID string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(taskID, status, recipientID)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivery so repeats inside the window are suppressed.
func (t *NotificationThrottle) Mark(ctx context.Context, taskID, status, recipientID string) error {
	return t.client.Set(ctx, t.key(taskID, status, recipientID), "1", t.ttl).Err()
}

func (t *NotificationThrottle) key(taskID, status, recipientID string) string {
	return fmt.Sprintf("notify:%s:%s:%s", taskID, status, recipientID)
}
