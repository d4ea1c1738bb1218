package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const cacheKeyPrefix = "macrobrief:cache:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// FetchCache backs the news package's same-day topic cache with Redis.
// Entries expire at the next UTC midnight, matching the date baked into the
// cache keys.
type FetchCache struct{}

func NewFetchCache() FetchCache {
	return FetchCache{}
}

func (FetchCache) Get(key string) (string, bool) {
	val, err := Redis.Get(Ctx, cacheKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("redis cache read failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (FetchCache) Set(key string, value string) {
	if err := Redis.Set(Ctx, cacheKeyPrefix+key, value, ttlUntilUTCMidnight(time.Now())).Err(); err != nil {
		slog.Warn("redis cache write failed", "key", key, "error", err)
	}
}

func ttlUntilUTCMidnight(now time.Time) time.Duration {
	now = now.UTC()
	midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return midnight.Sub(now)
}
