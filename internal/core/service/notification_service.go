package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencyhub/agency-api/internal/api/metrics"
	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// Throttle abstracts the repeat-notification suppressor (Redis).
type Throttle interface {
	IsSuppressed(ctx context.Context, taskID, status, recipientID string) (bool, error)
	Mark(ctx context.Context, taskID, status, recipientID string) error
}

type notificationService struct {
	notifications ports.NotificationRepository
	throttle      Throttle
	log           zerolog.Logger
}

// NewNotificationService returns a NotificationService that persists
// notifications, suppressing repeats of the same task/status/recipient.
func NewNotificationService(notifications ports.NotificationRepository, throttle Throttle, log zerolog.Logger) ports.NotificationService {
	return &notificationService{notifications: notifications, throttle: throttle, log: log}
}

// Deliver persists one notification. Throttle failures degrade to delivery:
// a duplicated notification is better than a silently dropped one.
func (s *notificationService) Deliver(ctx context.Context, in ports.NotificationInput) error {
	suppressed, err := s.throttle.IsSuppressed(ctx, in.TaskID, in.Status, in.RecipientID)
	if err != nil {
		s.log.Warn().Err(err).Str("task_id", in.TaskID).Msg("throttle check failed, delivering anyway")
	} else if suppressed {
		metrics.NotificationsThrottledTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("task_id", in.TaskID).Str("recipient_id", in.RecipientID).Msg("repeat notification suppressed")
		return nil
	}
	metrics.NotificationsThrottledTotal.WithLabelValues("miss").Inc()

	if markErr := s.throttle.Mark(ctx, in.TaskID, in.Status, in.RecipientID); markErr != nil {
		s.log.Warn().Err(markErr).Str("task_id", in.TaskID).Msg("failed to set throttle key")
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	n := &domain.Notification{
		RecipientID: in.RecipientID,
		TaskID:      in.TaskID,
		TaskTitle:   in.TaskTitle,
		Status:      in.Status,
		ActorID:     in.ActorID,
		CreatedAt:   ts,
	}
	if err := s.notifications.Insert(ctx, n); err != nil {
		return err
	}

	s.log.Info().
		Str("task_id", in.TaskID).
		Str("recipient_id", in.RecipientID).
		Str("status", in.Status).
		Msg("notification delivered")
	return nil
}
