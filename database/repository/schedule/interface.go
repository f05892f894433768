package scheduleRepo

import (
	"context"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// ScheduleRepository defines methods for schedule data access.
type ScheduleRepository interface {
	// GetByUserID retrieves the schedule owned by the given user.
	// Returns (nil, nil) when the user has no schedule.
	GetByUserID(ctx context.Context, userID string) (*models.Schedule, error)
	// Upsert replaces the user's schedule, creating it if absent.
	Upsert(ctx context.Context, schedule *models.Schedule) error
	// Delete removes the user's schedule.
	Delete(ctx context.Context, userID string) error
}
