package event

import (
	"context"

	eventRepo "github.com/darshanpawar101/mini-calendly-clone/database/repository/event"
	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// EventService defines methods for managing a user's bookable event types.
type EventService interface {
	// CreateEvent validates and inserts a new event type, assigning its ID.
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	// GetUserEvents retrieves all event types owned by a user.
	GetUserEvents(ctx context.Context, userID string) ([]models.Event, error)
	// GetActiveEvents retrieves only the user's active, publicly bookable event types.
	GetActiveEvents(ctx context.Context, userID string) ([]models.Event, error)
	// UpdateEvent modifies an event owned by the given user.
	UpdateEvent(ctx context.Context, userID string, event *models.Event) error
	// DeleteEvent removes an event owned by the given user.
	DeleteEvent(ctx context.Context, userID, id string) error
}

// DefaultEventService is a concrete implementation.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}
