// File: services/meeting/meeting.go
package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotUnavailableError signals that the requested start time is no longer bookable.
type SlotUnavailableError struct {
	StartTime time.Time
}

func (e SlotUnavailableError) Error() string {
	return "slot " + e.StartTime.Format(time.RFC3339) + " is not available"
}

// InvalidBookingError signals that a booking submission failed validation.
type InvalidBookingError struct {
	Reason string
}

func (e InvalidBookingError) Error() string {
	return "invalid booking: " + e.Reason
}

func validate(req BookMeetingRequest) error {
	if req.EventID == "" {
		return InvalidBookingError{Reason: "missing event id"}
	}
	if req.StartTime.IsZero() {
		return InvalidBookingError{Reason: "missing start time"}
	}
	if req.GuestName == "" {
		return InvalidBookingError{Reason: "missing guest name"}
	}
	if req.GuestEmail == "" {
		return InvalidBookingError{Reason: "missing guest email"}
	}
	return nil
}

// BookMeeting re-validates the requested slot against the host's availability and
// calendar, writes the calendar event, and persists the meeting record.
func (s *DefaultMeetingService) BookMeeting(ctx context.Context, req BookMeetingRequest) (*models.Meeting, error) {
	logger := utils.GetLogger()

	if err := validate(req); err != nil {
		return nil, err
	}

	event, err := s.EventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, InvalidBookingError{Reason: fmt.Sprintf("event %s is not active", event.ID)}
	}

	// The slot the guest picked may have been taken since it was displayed.
	valid, err := s.Availability.ResolveAvailableSlots(ctx, []time.Time{req.StartTime}, models.EventRequest{
		UserID:            event.UserID,
		DurationInMinutes: event.DurationInMinutes,
	})
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, SlotUnavailableError{StartTime: req.StartTime}
	}

	mtg := &models.Meeting{
		ID:         uuid.NewString(),
		EventID:    event.ID,
		HostUserID: event.UserID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestNotes: req.GuestNotes,
		StartTime:  req.StartTime,
		EndTime:    req.StartTime.Add(time.Duration(event.DurationInMinutes) * time.Minute),
		Timezone:   req.Timezone,
	}

	calendarEventID, err := s.Calendar.CreateEvent(ctx, event.UserID, mtg, event.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to write calendar event: %w", err)
	}
	mtg.CalendarEventID = calendarEventID

	if err := s.Repo.Create(ctx, mtg); err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.EnqueueMeetingReminder(ctx, mtg); err != nil {
			// The booking stands even if the reminder cannot be queued.
			logger.Warn("Failed to enqueue meeting reminder", zap.String("meetingID", mtg.ID), zap.Error(err))
		}
	}

	return mtg, nil
}

// GetHostMeetings lists meetings hosted by a user, soonest first.
func (s *DefaultMeetingService) GetHostMeetings(ctx context.Context, hostUserID string) ([]models.Meeting, error) {
	return s.Repo.GetByHost(ctx, hostUserID)
}
