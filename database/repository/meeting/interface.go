package meetingRepo

import (
	"context"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// MeetingRepository defines methods for booked-meeting data access.
type MeetingRepository interface {
	// Create inserts a new meeting record.
	Create(ctx context.Context, meeting *models.Meeting) error
	// GetByHost retrieves meetings hosted by a user, soonest first.
	GetByHost(ctx context.Context, hostUserID string) ([]models.Meeting, error)
	// GetStartingBetween retrieves meetings starting within [from, to), soonest first.
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error)
}
