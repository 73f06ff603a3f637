package domain

import "time"

// Client is an agency customer. A client has no owner field of its own;
// the users working on it are associated transitively through task
// assignments, which is also how visibility is derived.
type Client struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	ContactEmail string    `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Project groups tasks under a client engagement.
type Project struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
