package eventRepo

import (
	"context"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// EventRepository defines methods for event-type data access.
type EventRepository interface {
	// Create inserts a new event record.
	Create(ctx context.Context, event *models.Event) error
	// GetByID retrieves an event by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Event, error)
	// GetByUserID retrieves all events owned by a user.
	GetByUserID(ctx context.Context, userID string) ([]models.Event, error)
	// GetActiveByUserID retrieves a user's active events only.
	GetActiveByUserID(ctx context.Context, userID string) ([]models.Event, error)
	// Update modifies an existing event record.
	Update(ctx context.Context, event *models.Event) error
	// Delete removes an event record by its ID.
	Delete(ctx context.Context, id string) error
}
