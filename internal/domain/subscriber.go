package domain

import "time"

// EmailSubscriber is a newsletter signup. Email is unique and stored
// lower-cased; signing up again with the same address updates the mutable
// fields in place instead of creating a duplicate.
type EmailSubscriber struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Name          string    `bson:"name,omitempty" json:"name,omitempty"`
	HealthUpdates bool      `bson:"health_updates" json:"health_updates"`
	Source        string    `bson:"source" json:"source"`
	SubscribedAt  time.Time `bson:"subscribed_at" json:"subscribed_at"`
	Confirmed     bool      `bson:"confirmed" json:"confirmed"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
