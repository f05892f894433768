package models

import "time"

// TimeRange is an absolute [Start, End) interval.
type TimeRange struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Meeting represents a confirmed booking record.
type Meeting struct {
	ID              string    `bson:"id" json:"id"`
	EventID         string    `bson:"event_id" json:"eventId"`
	HostUserID      string    `bson:"host_user_id" json:"hostUserId"`
	GuestName       string    `bson:"guest_name" json:"guestName"`
	GuestEmail      string    `bson:"guest_email" json:"guestEmail"`
	GuestNotes      string    `bson:"guest_notes,omitempty" json:"guestNotes,omitempty"`
	StartTime       time.Time `bson:"start_time" json:"startTime"`
	EndTime         time.Time `bson:"end_time" json:"endTime"`
	Timezone        string    `bson:"timezone" json:"timezone"`
	CalendarEventID string    `bson:"calendar_event_id,omitempty" json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
