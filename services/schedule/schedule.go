// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"go.uber.org/zap"
)

// InvalidScheduleError signals that a submitted schedule failed validation.
type InvalidScheduleError struct {
	Reason string
}

func (e InvalidScheduleError) Error() string {
	return "invalid schedule: " + e.Reason
}

// GetSchedule retrieves the user's schedule, consulting the Redis cache first.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, userID string) (*models.Schedule, error) {
	logger := utils.GetLogger()
	key := utils.ScheduleCachePrefix + userID

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var schedule models.Schedule
			if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
				return &schedule, nil
			}
			logger.Warn("Discarding undecodable cached schedule", zap.String("userID", userID))
		}
	}

	schedule, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	if s.Cache != nil {
		if data, err := json.Marshal(schedule); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.ScheduleCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache schedule", zap.String("userID", userID), zap.Error(err))
			}
		}
	}
	return schedule, nil
}

// SaveSchedule validates and upserts the user's schedule, invalidating the cache.
func (s *DefaultScheduleService) SaveSchedule(ctx context.Context, schedule *models.Schedule) error {
	if schedule.UserID == "" {
		return InvalidScheduleError{Reason: "missing user id"}
	}
	if _, err := time.LoadLocation(schedule.Timezone); err != nil {
		return InvalidScheduleError{Reason: fmt.Sprintf("unknown timezone %q", schedule.Timezone)}
	}
	for _, a := range schedule.Availabilities {
		if err := a.Validate(); err != nil {
			return InvalidScheduleError{Reason: err.Error()}
		}
	}

	if err := s.Repo.Upsert(ctx, schedule); err != nil {
		return err
	}
	s.invalidate(ctx, schedule.UserID)
	return nil
}

// DeleteSchedule removes the user's schedule and its cache entry.
func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ScheduleCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate schedule cache", zap.String("userID", userID), zap.Error(err))
	}
}
