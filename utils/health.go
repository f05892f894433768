package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

type healthPing func(ctx context.Context) error

// runHealthCheck pings both backends and stores the snapshot.
func runHealthCheck(ctx context.Context, redisPing, mongoPing healthPing) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Redis:     redisPing(pingCtx) == nil,
		Mongo:     mongoPing(pingCtx) == nil,
		CheckedAt: time.Now(),
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The first check runs immediately so /health never serves the zero snapshot for
// a full tick interval.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	redisPing := func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	mongoPing := func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }

	go func() {
		ctx := context.Background()
		runHealthCheck(ctx, redisPing, mongoPing)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			runHealthCheck(ctx, redisPing, mongoPing)
		}
	}()
}
