// File: services/availability/resolver.go
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// ScheduleStore loads a user's schedule. Implementations return (nil, nil) when the
// user has no schedule.
type ScheduleStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.Schedule, error)
}

// BusyIntervalSource lists externally-booked intervals for a user within a bounded
// window. Results may be unsorted and may overlap each other.
type BusyIntervalSource interface {
	ListBusyIntervals(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.TimeRange, error)
}

// AvailabilityService defines methods for resolving bookable meeting start times.
type AvailabilityService interface {
	// ResolveAvailableSlots filters candidate start instants down to those that fit the
	// user's recurring availability and collide with no existing calendar event. The
	// result is a subsequence of the input in the same relative order.
	//
	// Caller contract: timesInOrder must already be chronologically ordered; the busy
	// interval fetch is bounded by its first and last elements as given.
	ResolveAvailableSlots(ctx context.Context, timesInOrder []time.Time, req models.EventRequest) ([]time.Time, error)
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	Schedules ScheduleStore
	Calendar  BusyIntervalSource
}

func (s *DefaultAvailabilityService) ResolveAvailableSlots(ctx context.Context, timesInOrder []time.Time, req models.EventRequest) ([]time.Time, error) {
	if len(timesInOrder) == 0 {
		return nil, nil
	}
	windowStart := timesInOrder[0]
	windowEnd := timesInOrder[len(timesInOrder)-1]

	schedule, err := s.Schedules.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		// No schedule means nothing is ever available. Not an error.
		return nil, nil
	}

	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule for user %s has invalid timezone %q: %w", req.UserID, schedule.Timezone, err)
	}

	busy, err := s.Calendar.ListBusyIntervals(ctx, req.UserID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy intervals: %w", err)
	}

	grouped := groupBy(schedule.Availabilities, func(a models.Availability) models.Weekday {
		return a.DayOfWeek
	})

	duration := time.Duration(req.DurationInMinutes) * time.Minute

	var valid []time.Time
	for _, start := range timesInOrder {
		end := start.Add(duration)

		windows, err := dayWindows(grouped, start, loc)
		if err != nil {
			return nil, err
		}
		if overlapsAny(start, end, busy) {
			continue
		}
		if containedInAny(start, end, windows) {
			valid = append(valid, start)
		}
	}
	return valid, nil
}
