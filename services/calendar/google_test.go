package calendar

import (
	"testing"
	"time"

	calendarapi "google.golang.org/api/calendar/v3"
)

func TestEventInterval_DateTime(t *testing.T) {
	item := &calendarapi.Event{
		Start: &calendarapi.EventDateTime{DateTime: "2024-03-04T10:00:00-05:00"},
		End:   &calendarapi.EventDateTime{DateTime: "2024-03-04T10:30:00-05:00"},
	}
	interval, ok, err := eventInterval(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected an interval")
	}
	if got := interval.End.Sub(interval.Start); got != 30*time.Minute {
		t.Fatalf("expected 30m interval, got %s", got)
	}
}

func TestEventInterval_AllDay(t *testing.T) {
	item := &calendarapi.Event{
		Start: &calendarapi.EventDateTime{Date: "2024-03-04"},
		End:   &calendarapi.EventDateTime{Date: "2024-03-05"},
	}
	interval, ok, err := eventInterval(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected an interval")
	}
	if got := interval.End.Sub(interval.Start); got != 24*time.Hour {
		t.Fatalf("expected a whole day, got %s", got)
	}
}

func TestEventInterval_Missing(t *testing.T) {
	_, ok, err := eventInterval(&calendarapi.Event{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no interval for an event without start/end")
	}
}

func TestEventInterval_BadDateTime(t *testing.T) {
	item := &calendarapi.Event{
		Start: &calendarapi.EventDateTime{DateTime: "yesterday"},
		End:   &calendarapi.EventDateTime{DateTime: "2024-03-04T10:30:00-05:00"},
	}
	if _, _, err := eventInterval(item); err == nil {
		t.Fatal("expected an error for an unparseable datetime")
	}
}
