// File: workers/sweep.go
package workers

import (
	"context"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/config"
	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"go.uber.org/zap"
)

// UpcomingMeetingSource lists meetings starting within a window.
type UpcomingMeetingSource interface {
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error)
}

// MeetingReminderScheduler queues a reminder for a booked meeting.
type MeetingReminderScheduler interface {
	EnqueueMeetingReminder(ctx context.Context, meeting *models.Meeting) error
}

// StartReminderSweep periodically re-enqueues reminders for meetings starting within
// the upcoming lead window. Enqueueing is idempotent per meeting, so the sweep only
// catches bookings whose reminder was lost at creation time.
func StartReminderSweep(meetings UpcomingMeetingSource, scheduler MeetingReminderScheduler, interval time.Duration) {
	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := sweepReminders(ctx, meetings, scheduler, time.Now(), lead+interval); err != nil {
				logger.Error("Reminder sweep failed", zap.Error(err))
			}
			cancel()
		}
	}()
}

// sweepReminders enqueues a reminder for every meeting starting within horizon of now.
// A single meeting failing to enqueue does not stop the rest.
func sweepReminders(ctx context.Context, meetings UpcomingMeetingSource, scheduler MeetingReminderScheduler, now time.Time, horizon time.Duration) error {
	logger := utils.GetLogger()

	upcoming, err := meetings.GetStartingBetween(ctx, now, now.Add(horizon))
	if err != nil {
		return err
	}
	for i := range upcoming {
		if err := scheduler.EnqueueMeetingReminder(ctx, &upcoming[i]); err != nil {
			logger.Error("Failed to enqueue reminder during sweep",
				zap.String("meetingID", upcoming[i].ID), zap.Error(err))
		}
	}
	return nil
}
