// File: services/event/event.go
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"

	"github.com/google/uuid"
)

// InvalidEventError signals that a submitted event type failed validation.
type InvalidEventError struct {
	Reason string
}

func (e InvalidEventError) Error() string {
	return "invalid event: " + e.Reason
}

func validate(event *models.Event) error {
	if event.UserID == "" {
		return InvalidEventError{Reason: "missing user id"}
	}
	if event.Name == "" {
		return InvalidEventError{Reason: "missing name"}
	}
	if event.DurationInMinutes <= 0 {
		return InvalidEventError{Reason: "duration must be positive"}
	}
	return nil
}

// CreateEvent validates and inserts a new event type, assigning its ID.
func (s *DefaultEventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := validate(event); err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent retrieves an event by ID.
func (s *DefaultEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetUserEvents retrieves all event types owned by a user.
func (s *DefaultEventService) GetUserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// GetActiveEvents retrieves only the user's active, publicly bookable event types.
func (s *DefaultEventService) GetActiveEvents(ctx context.Context, userID string) ([]models.Event, error) {
	return s.Repo.GetActiveByUserID(ctx, userID)
}

// UpdateEvent modifies an event owned by the given user.
func (s *DefaultEventService) UpdateEvent(ctx context.Context, userID string, event *models.Event) error {
	if err := validate(event); err != nil {
		return err
	}
	existing, err := s.Repo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("event %s is not owned by user %s", event.ID, userID)
	}
	// Stamp here so the caller's record is complete even though the repo
	// persists the same field.
	event.UserID = existing.UserID
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, event)
}

// DeleteEvent removes an event owned by the given user.
func (s *DefaultEventService) DeleteEvent(ctx context.Context, userID, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("event %s is not owned by user %s", id, userID)
	}
	return s.Repo.Delete(ctx, id)
}
