package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday identifies a day of the week for a recurring availability rule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// DaysOfWeekInOrder lists the weekdays in display order.
var DaysOfWeekInOrder = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeekdayOf maps a time.Weekday onto the rule weekday enum.
func WeekdayOf(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Availability is a recurring weekly window during which a user is willing to be booked.
// StartTime and EndTime are wall-clock times of day in "H:MM" or "HH:MM" 24-hour format,
// interpreted in the owning schedule's timezone. StartTime < EndTime is enforced when the
// schedule is saved.
type Availability struct {
	DayOfWeek Weekday `bson:"day_of_week" json:"dayOfWeek"`
	StartTime string  `bson:"start_time" json:"startTime"`
	EndTime   string  `bson:"end_time" json:"endTime"`
}

// ParseTimeOfDay parses a "H:MM" or "HH:MM" 24-hour wall-clock time of day.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time of day %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q out of range", s)
	}
	return hour, minute, nil
}

// Validate checks the authoring-time invariants of one availability rule.
func (a Availability) Validate() error {
	valid := false
	for _, d := range DaysOfWeekInOrder {
		if a.DayOfWeek == d {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown day of week %q", a.DayOfWeek)
	}

	startHour, startMin, err := ParseTimeOfDay(a.StartTime)
	if err != nil {
		return err
	}
	endHour, endMin, err := ParseTimeOfDay(a.EndTime)
	if err != nil {
		return err
	}
	if startHour*60+startMin >= endHour*60+endMin {
		return fmt.Errorf("availability start %q must be before end %q", a.StartTime, a.EndTime)
	}
	return nil
}

// Schedule holds a user's timezone and recurring availability rules. Multiple rules per
// day are allowed and represent disjoint windows.
type Schedule struct {
	UserID         string         `bson:"user_id" json:"userId"`
	Timezone       string         `bson:"timezone" json:"timezone"` // IANA identifier
	Availabilities []Availability `bson:"availabilities" json:"availabilities"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updatedAt"`
}
