package domain

import "time"

// ActivityEntry is an append-only audit row describing something a user did.
type ActivityEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	Action     string    `json:"action" bson:"action"`
	TaskID     string    `json:"task_id,omitempty" bson:"task_id,omitempty"`
	TargetID   string    `json:"target_id,omitempty" bson:"target_id,omitempty"`
	FromStatus string    `json:"from_status,omitempty" bson:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty" bson:"to_status,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

// Notification is a message queued for delivery to a user after a task
// changed state.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	TaskID      string    `json:"task_id" bson:"task_id"`
	TaskTitle   string    `json:"task_title" bson:"task_title"`
	Status      string    `json:"status" bson:"status"`
	ActorID     string    `json:"actor_id" bson:"actor_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Read        bool      `json:"read" bson:"read"`
}
