// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for schedule read caching.
var CacheClient *redis.Client

// ScheduleCachePrefix is the prefix used for Redis schedule cache keys.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL is the time-to-live for cached schedules.
const ScheduleCacheTTL = 10 * time.Minute

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
