package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/services/meeting"

	"github.com/gin-gonic/gin"
)

type fakeEventService struct {
	event *models.Event
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	return event, nil
}
func (f *fakeEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return f.event, nil
}
func (f *fakeEventService) GetUserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventService) GetActiveEvents(ctx context.Context, userID string) ([]models.Event, error) {
	if f.event != nil {
		return []models.Event{*f.event}, nil
	}
	return nil, nil
}
func (f *fakeEventService) UpdateEvent(ctx context.Context, userID string, event *models.Event) error {
	return nil
}
func (f *fakeEventService) DeleteEvent(ctx context.Context, userID, id string) error { return nil }

type fakeAvailabilityService struct {
	slots []time.Time
}

func (f *fakeAvailabilityService) ResolveAvailableSlots(ctx context.Context, timesInOrder []time.Time, req models.EventRequest) ([]time.Time, error) {
	return f.slots, nil
}

type fakeMeetingService struct {
	meeting *models.Meeting
	err     error
}

func (f *fakeMeetingService) BookMeeting(ctx context.Context, req meeting.BookMeetingRequest) (*models.Meeting, error) {
	return f.meeting, f.err
}
func (f *fakeMeetingService) GetHostMeetings(ctx context.Context, hostUserID string) ([]models.Meeting, error) {
	return nil, nil
}

func activeEvent() *models.Event {
	return &models.Event{
		ID:                "ev1",
		UserID:            "host@example.com",
		Name:              "Intro call",
		DurationInMinutes: 30,
		IsActive:          true,
	}
}

func newBookingRouter(h *BookingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/book/events/:eventId/slots", h.GetSlotsHandler)
	r.POST("/api/book/events/:eventId", h.BookMeetingHandler)
	return r
}

func TestGetSlotsHandler(t *testing.T) {
	slot := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	h := NewBookingHandler(
		&fakeEventService{event: activeEvent()},
		&fakeAvailabilityService{slots: []time.Time{slot}},
		&fakeMeetingService{},
	)
	router := newBookingRouter(h)

	req := httptest.NewRequest(http.MethodGet,
		"/api/book/events/ev1/slots?from=2024-03-04T09:00:00Z&to=2024-03-04T17:00:00Z", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Slots []time.Time `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Slots) != 1 || !resp.Slots[0].Equal(slot) {
		t.Fatalf("unexpected slots: %v", resp.Slots)
	}
}

func TestGetSlotsHandler_BadRange(t *testing.T) {
	h := NewBookingHandler(&fakeEventService{event: activeEvent()}, &fakeAvailabilityService{}, &fakeMeetingService{})
	router := newBookingRouter(h)

	cases := []string{
		"/api/book/events/ev1/slots?from=tomorrow&to=2024-03-04T17:00:00Z",
		"/api/book/events/ev1/slots?from=2024-03-04T17:00:00Z&to=2024-03-04T09:00:00Z",
		"/api/book/events/ev1/slots?from=2024-03-04T09:00:00Z&to=2024-06-04T09:00:00Z",
	}
	for _, url := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, w.Code)
		}
	}
}

func TestBookMeetingHandler_Conflict(t *testing.T) {
	h := NewBookingHandler(
		&fakeEventService{event: activeEvent()},
		&fakeAvailabilityService{},
		&fakeMeetingService{err: meeting.SlotUnavailableError{StartTime: time.Now()}},
	)
	router := newBookingRouter(h)

	body := `{"startTime":"2024-03-04T10:00:00Z","guestName":"Pat","guestEmail":"pat@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/book/events/ev1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookMeetingHandler_InvalidPayload(t *testing.T) {
	h := NewBookingHandler(&fakeEventService{event: activeEvent()}, &fakeAvailabilityService{}, &fakeMeetingService{})
	router := newBookingRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/book/events/ev1", strings.NewReader(`{"guestName":"Pat"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
