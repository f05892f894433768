package calendar

import (
	"context"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// CalendarService defines methods for reading and writing a user's external calendar.
type CalendarService interface {
	// ListBusyIntervals returns the absolute intervals occupied by existing calendar
	// events for the user within [windowStart, windowEnd]. Intervals may overlap and
	// are not guaranteed to be sorted.
	ListBusyIntervals(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.TimeRange, error)
	// CreateEvent writes a booked meeting onto the host's calendar and returns the
	// created calendar event ID.
	CreateEvent(ctx context.Context, userID string, meeting *models.Meeting, summary string) (string, error)
}
