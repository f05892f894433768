package models

import "time"

// Event represents a bookable event type owned by a user (e.g. "30 minute intro call").
type Event struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"userId"`
	Name              string    `bson:"name" json:"name"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationInMinutes int       `bson:"duration_in_minutes" json:"durationInMinutes"`
	IsActive          bool      `bson:"is_active" json:"isActive"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// EventRequest defines the meeting window length to test during slot resolution.
type EventRequest struct {
	UserID            string `json:"userId"`
	DurationInMinutes int    `json:"durationInMinutes"`
}
