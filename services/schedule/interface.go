package schedule

import (
	"context"

	scheduleRepo "github.com/darshanpawar101/mini-calendly-clone/database/repository/schedule"
	"github.com/darshanpawar101/mini-calendly-clone/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService defines methods for managing a user's weekly availability schedule.
type ScheduleService interface {
	// GetSchedule retrieves the user's schedule, or (nil, nil) if none is saved.
	GetSchedule(ctx context.Context, userID string) (*models.Schedule, error)
	// SaveSchedule validates and upserts the user's schedule.
	SaveSchedule(ctx context.Context, schedule *models.Schedule) error
	// DeleteSchedule removes the user's schedule.
	DeleteSchedule(ctx context.Context, userID string) error
}

// DefaultScheduleService is a concrete implementation backed by MongoDB with a Redis
// read cache.
type DefaultScheduleService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client
}
