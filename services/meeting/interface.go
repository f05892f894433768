package meeting

import (
	"context"
	"time"

	eventRepo "github.com/darshanpawar101/mini-calendly-clone/database/repository/event"
	meetingRepo "github.com/darshanpawar101/mini-calendly-clone/database/repository/meeting"
	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/services/availability"
	"github.com/darshanpawar101/mini-calendly-clone/services/calendar"
)

// BookMeetingRequest carries the guest's booking submission.
type BookMeetingRequest struct {
	EventID    string    `json:"eventId"`
	StartTime  time.Time `json:"startTime"`
	Timezone   string    `json:"timezone"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestNotes string    `json:"guestNotes,omitempty"`
}

// ReminderScheduler queues a reminder for a booked meeting.
type ReminderScheduler interface {
	EnqueueMeetingReminder(ctx context.Context, meeting *models.Meeting) error
}

// MeetingService defines methods for booking and listing meetings.
type MeetingService interface {
	// BookMeeting re-validates the requested slot, writes the calendar event, and
	// persists the meeting record.
	BookMeeting(ctx context.Context, req BookMeetingRequest) (*models.Meeting, error)
	// GetHostMeetings lists meetings hosted by a user, soonest first.
	GetHostMeetings(ctx context.Context, hostUserID string) ([]models.Meeting, error)
}

// DefaultMeetingService is a concrete implementation.
type DefaultMeetingService struct {
	Repo         meetingRepo.MeetingRepository
	EventRepo    eventRepo.EventRepository
	Availability availability.AvailabilityService
	Calendar     calendar.CalendarService
	Reminders    ReminderScheduler
}
