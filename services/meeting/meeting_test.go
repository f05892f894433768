package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

type fakeEventRepo struct {
	event *models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error { return nil }
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, errors.New("event not found")
	}
	return f.event, nil
}
func (f *fakeEventRepo) GetByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetActiveByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) Update(ctx context.Context, event *models.Event) error { return nil }
func (f *fakeEventRepo) Delete(ctx context.Context, id string) error           { return nil }

type fakeMeetingRepo struct {
	created []*models.Meeting
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	f.created = append(f.created, meeting)
	return nil
}
func (f *fakeMeetingRepo) GetByHost(ctx context.Context, hostUserID string) ([]models.Meeting, error) {
	return nil, nil
}
func (f *fakeMeetingRepo) GetStartingBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error) {
	return nil, nil
}

type fakeAvailability struct {
	accept bool
}

func (f *fakeAvailability) ResolveAvailableSlots(ctx context.Context, timesInOrder []time.Time, req models.EventRequest) ([]time.Time, error) {
	if f.accept {
		return timesInOrder, nil
	}
	return nil, nil
}

type fakeCalendarService struct {
	createdID string
	err       error
	calls     int
}

func (f *fakeCalendarService) ListBusyIntervals(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.TimeRange, error) {
	return nil, nil
}
func (f *fakeCalendarService) CreateEvent(ctx context.Context, userID string, meeting *models.Meeting, summary string) (string, error) {
	f.calls++
	return f.createdID, f.err
}

type fakeReminders struct {
	enqueued int
}

func (f *fakeReminders) EnqueueMeetingReminder(ctx context.Context, meeting *models.Meeting) error {
	f.enqueued++
	return nil
}

func testEvent() *models.Event {
	return &models.Event{
		ID:                "ev1",
		UserID:            "host@example.com",
		Name:              "Intro call",
		DurationInMinutes: 30,
		IsActive:          true,
	}
}

func testRequest() BookMeetingRequest {
	return BookMeetingRequest{
		EventID:    "ev1",
		StartTime:  time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		Timezone:   "America/New_York",
		GuestName:  "Pat",
		GuestEmail: "pat@example.com",
	}
}

func TestBookMeeting_Success(t *testing.T) {
	repo := &fakeMeetingRepo{}
	cal := &fakeCalendarService{createdID: "gcal-123"}
	reminders := &fakeReminders{}
	svc := &DefaultMeetingService{
		Repo:         repo,
		EventRepo:    &fakeEventRepo{event: testEvent()},
		Availability: &fakeAvailability{accept: true},
		Calendar:     cal,
		Reminders:    reminders,
	}

	mtg, err := svc.BookMeeting(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mtg.CalendarEventID != "gcal-123" {
		t.Fatalf("expected calendar event id to be recorded, got %q", mtg.CalendarEventID)
	}
	if got := mtg.EndTime.Sub(mtg.StartTime); got != 30*time.Minute {
		t.Fatalf("expected 30m meeting, got %s", got)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted meeting, got %d", len(repo.created))
	}
	if reminders.enqueued != 1 {
		t.Fatalf("expected 1 reminder enqueued, got %d", reminders.enqueued)
	}
}

func TestBookMeeting_SlotTaken(t *testing.T) {
	cal := &fakeCalendarService{}
	svc := &DefaultMeetingService{
		Repo:         &fakeMeetingRepo{},
		EventRepo:    &fakeEventRepo{event: testEvent()},
		Availability: &fakeAvailability{accept: false},
		Calendar:     cal,
	}

	_, err := svc.BookMeeting(context.Background(), testRequest())
	var unavailable SlotUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected SlotUnavailableError, got %v", err)
	}
	if cal.calls != 0 {
		t.Fatal("expected no calendar write for an unavailable slot")
	}
}

func TestBookMeeting_InactiveEvent(t *testing.T) {
	event := testEvent()
	event.IsActive = false
	svc := &DefaultMeetingService{
		Repo:         &fakeMeetingRepo{},
		EventRepo:    &fakeEventRepo{event: event},
		Availability: &fakeAvailability{accept: true},
		Calendar:     &fakeCalendarService{},
	}

	_, err := svc.BookMeeting(context.Background(), testRequest())
	var invalid InvalidBookingError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidBookingError, got %v", err)
	}
}

func TestBookMeeting_ValidationErrors(t *testing.T) {
	svc := &DefaultMeetingService{
		Repo:         &fakeMeetingRepo{},
		EventRepo:    &fakeEventRepo{event: testEvent()},
		Availability: &fakeAvailability{accept: true},
		Calendar:     &fakeCalendarService{},
	}

	bad := []func(r *BookMeetingRequest){
		func(r *BookMeetingRequest) { r.EventID = "" },
		func(r *BookMeetingRequest) { r.StartTime = time.Time{} },
		func(r *BookMeetingRequest) { r.GuestName = "" },
		func(r *BookMeetingRequest) { r.GuestEmail = "" },
	}
	for i, mutate := range bad {
		req := testRequest()
		mutate(&req)
		_, err := svc.BookMeeting(context.Background(), req)
		var invalid InvalidBookingError
		if !errors.As(err, &invalid) {
			t.Errorf("case %d: expected InvalidBookingError, got %v", i, err)
		}
	}
}

func TestBookMeeting_CalendarFailure(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := &DefaultMeetingService{
		Repo:         repo,
		EventRepo:    &fakeEventRepo{event: testEvent()},
		Availability: &fakeAvailability{accept: true},
		Calendar:     &fakeCalendarService{err: errors.New("calendar down")},
	}

	if _, err := svc.BookMeeting(context.Background(), testRequest()); err == nil {
		t.Fatal("expected calendar failure to propagate")
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no persisted meeting after a calendar failure")
	}
}
