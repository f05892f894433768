// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/config"
	"github.com/darshanpawar101/mini-calendly-clone/models"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService implements CalendarService against the Google Calendar API
// using a service account with domain-wide delegation. The userID is used as the
// delegated subject, so it must be the user's Google account email.
type GoogleCalendarService struct {
	conf       *jwt.Config
	calendarID string
}

// NewGoogleCalendarService loads the service-account credentials configured in
// GOOGLE_CREDENTIALS_FILE.
func NewGoogleCalendarService() (*GoogleCalendarService, error) {
	data, err := os.ReadFile(config.AppConfig.GoogleCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read google credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, calendarapi.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}
	return &GoogleCalendarService{
		conf:       conf,
		calendarID: config.AppConfig.GoogleCalendarID,
	}, nil
}

// serviceFor builds a Calendar API client acting as the given user.
func (s *GoogleCalendarService) serviceFor(ctx context.Context, userID string) (*calendarapi.Service, error) {
	conf := *s.conf
	conf.Subject = userID
	svc, err := calendarapi.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client for %s: %w", userID, err)
	}
	return svc, nil
}

// ListBusyIntervals returns the intervals occupied by the user's calendar events
// within [windowStart, windowEnd].
func (s *GoogleCalendarService) ListBusyIntervals(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.TimeRange, error) {
	svc, err := s.serviceFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	call := svc.Events.List(s.calendarID).
		SingleEvents(true).
		TimeMin(windowStart.Format(time.RFC3339)).
		TimeMax(windowEnd.Format(time.RFC3339)).
		MaxResults(2500)

	var busy []models.TimeRange
	if err := call.Pages(ctx, func(events *calendarapi.Events) error {
		for _, item := range events.Items {
			if item.Status == "cancelled" || item.Transparency == "transparent" {
				continue
			}
			interval, ok, err := eventInterval(item)
			if err != nil {
				return err
			}
			if ok {
				busy = append(busy, interval)
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to list calendar events for %s: %w", userID, err)
	}
	return busy, nil
}

// eventInterval extracts the absolute interval of one calendar event. All-day events
// carry a date instead of a datetime and span whole days in UTC.
func eventInterval(item *calendarapi.Event) (models.TimeRange, bool, error) {
	if item.Start == nil || item.End == nil {
		return models.TimeRange{}, false, nil
	}
	if item.Start.DateTime != "" && item.End.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return models.TimeRange{}, false, fmt.Errorf("bad event start %q: %w", item.Start.DateTime, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return models.TimeRange{}, false, fmt.Errorf("bad event end %q: %w", item.End.DateTime, err)
		}
		return models.TimeRange{Start: start, End: end}, true, nil
	}
	if item.Start.Date != "" && item.End.Date != "" {
		start, err := time.Parse("2006-01-02", item.Start.Date)
		if err != nil {
			return models.TimeRange{}, false, fmt.Errorf("bad all-day start %q: %w", item.Start.Date, err)
		}
		end, err := time.Parse("2006-01-02", item.End.Date)
		if err != nil {
			return models.TimeRange{}, false, fmt.Errorf("bad all-day end %q: %w", item.End.Date, err)
		}
		return models.TimeRange{Start: start, End: end}, true, nil
	}
	return models.TimeRange{}, false, nil
}

// CreateEvent writes a booked meeting onto the host's calendar.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, userID string, meeting *models.Meeting, summary string) (string, error) {
	svc, err := s.serviceFor(ctx, userID)
	if err != nil {
		return "", err
	}

	event := &calendarapi.Event{
		Summary:     fmt.Sprintf("%s + %s", summary, meeting.GuestName),
		Description: meeting.GuestNotes,
		Start:       &calendarapi.EventDateTime{DateTime: meeting.StartTime.Format(time.RFC3339)},
		End:         &calendarapi.EventDateTime{DateTime: meeting.EndTime.Format(time.RFC3339)},
		Attendees: []*calendarapi.EventAttendee{
			{Email: meeting.GuestEmail, DisplayName: meeting.GuestName},
		},
	}

	created, err := svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event for %s: %w", userID, err)
	}
	return created.Id, nil
}
