package availability

import (
	"testing"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

func TestGroupByKeepsBucketOrder(t *testing.T) {
	rules := []models.Availability{
		{DayOfWeek: models.Monday, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: models.Tuesday, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: models.Monday, StartTime: "14:00", EndTime: "15:00"},
	}
	grouped := groupBy(rules, func(a models.Availability) models.Weekday { return a.DayOfWeek })

	if len(grouped) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(grouped))
	}
	monday := grouped[models.Monday]
	if len(monday) != 2 || monday[0].StartTime != "09:00" || monday[1].StartTime != "14:00" {
		t.Fatalf("monday bucket lost original order: %v", monday)
	}
	if len(grouped[models.Wednesday]) != 0 {
		t.Fatal("expected missing key to yield an empty bucket")
	}
}

func TestCandidateTimes(t *testing.T) {
	from := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	times := CandidateTimes(from, to, 15*time.Minute)
	if len(times) != 5 {
		t.Fatalf("expected 5 candidates, got %d", len(times))
	}
	if !times[0].Equal(from) || !times[4].Equal(to) {
		t.Fatalf("expected inclusive range endpoints, got %v", times)
	}

	if got := CandidateTimes(to, from, 15*time.Minute); got != nil {
		t.Fatalf("expected nil for inverted range, got %v", got)
	}
	if got := CandidateTimes(from, to, 0); got != nil {
		t.Fatalf("expected nil for non-positive step, got %v", got)
	}
}
