// File: services/availability/windows.go
package availability

import (
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
)

// dayWindows resolves the absolute availability windows that apply to one candidate
// instant. The weekday is read from the instant as given, in whatever location the
// instant already carries, while the rule clock-times are anchored on the instant's
// calendar date in the schedule's timezone. When those two frames differ the selected
// weekday can be off by one near midnight; callers wanting the schedule's own local
// weekday must pass candidates already normalized into that timezone.
func dayWindows(grouped map[models.Weekday][]models.Availability, instant time.Time, loc *time.Location) ([]models.TimeRange, error) {
	rules := grouped[models.WeekdayOf(instant.Weekday())]
	if len(rules) == 0 {
		return nil, nil
	}

	windows := make([]models.TimeRange, 0, len(rules))
	for _, rule := range rules {
		// A rule that does not parse is corrupt stored data; fail the whole resolution
		// rather than silently treating the day as unavailable.
		startHour, startMin, err := models.ParseTimeOfDay(rule.StartTime)
		if err != nil {
			return nil, fmt.Errorf("availability rule for %s: %w", rule.DayOfWeek, err)
		}
		endHour, endMin, err := models.ParseTimeOfDay(rule.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability rule for %s: %w", rule.DayOfWeek, err)
		}

		year, month, day := instant.Date()
		windows = append(windows, models.TimeRange{
			Start: time.Date(year, month, day, startHour, startMin, 0, 0, loc),
			End:   time.Date(year, month, day, endHour, endMin, 0, 0, loc),
		})
	}
	return windows, nil
}

// overlapsAny reports whether [start, end) overlaps any of the busy intervals.
// Half-open semantics: touching boundaries do not overlap.
func overlapsAny(start, end time.Time, busy []models.TimeRange) bool {
	for _, b := range busy {
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}

// containedInAny reports whether [start, end] lies inside at least one window,
// inclusive at both endpoints.
func containedInAny(start, end time.Time, windows []models.TimeRange) bool {
	for _, w := range windows {
		if !start.Before(w.Start) && !end.After(w.End) {
			return true
		}
	}
	return false
}
