// File: workers/reminder.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/config"
	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the asynq task payload for a meeting reminder.
type ReminderPayload struct {
	MeetingID  string `json:"meetingId"`
	HostUserID string `json:"hostUserId"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	StartTime  string `json:"startTime"` // RFC3339
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderQueue enqueues meeting reminders to be delivered before the meeting starts.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue creates the asynq client for reminder scheduling.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// EnqueueMeetingReminder schedules a reminder to fire the configured lead time before
// the meeting start. Meetings starting sooner than the lead time get no reminder.
func (q *ReminderQueue) EnqueueMeetingReminder(ctx context.Context, meeting *models.Meeting) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := meeting.StartTime.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		MeetingID:  meeting.ID,
		HostUserID: meeting.HostUserID,
		GuestName:  meeting.GuestName,
		GuestEmail: meeting.GuestEmail,
		StartTime:  meeting.StartTime.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	// The task ID makes enqueueing idempotent, so the periodic sweep can safely
	// re-submit a meeting whose reminder is already queued.
	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = q.client.EnqueueContext(ctx, task,
		asynq.TaskID("reminder:"+meeting.ID), asynq.ProcessAt(fireAt))
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder for meeting %s: %w", meeting.ID, err)
	}
	return nil
}

// Notifier delivers a reminder to the meeting participants.
type Notifier interface {
	SendMeetingReminder(ctx context.Context, payload ReminderPayload) error
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifier Notifier) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifier))

	// Start async worker with retry logic
	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		logger.Info("Triggering meeting reminder",
			zap.String("meetingID", p.MeetingID),
			zap.String("host", p.HostUserID),
			zap.String("guest", p.GuestEmail))

		if err := notifier.SendMeetingReminder(ctx, p); err != nil {
			logger.Error("Failed to deliver reminder", zap.String("meetingID", p.MeetingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// LogNotifier is a Notifier that only logs. Stands in until an email sender is wired.
type LogNotifier struct{}

func (LogNotifier) SendMeetingReminder(ctx context.Context, payload ReminderPayload) error {
	utils.GetLogger().Info("Meeting reminder",
		zap.String("meetingID", payload.MeetingID),
		zap.String("guest", payload.GuestName),
		zap.String("startsAt", payload.StartTime))
	return nil
}
