package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// LoginLimiter throttles the credential endpoints per route and client key.
type LoginLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

func NewLoginLimiter(client *redis.Client, perMinute int) *LoginLimiter {
	return &LoginLimiter{
		limiter: redis_rate.NewLimiter(client),
		limit:   redis_rate.PerMinute(perMinute),
	}
}

// Allow reports whether the key may proceed and, if not, how long to wait.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	res, err := l.limiter.Allow(ctx, "auth:"+key, l.limit)
	if err != nil {
		return false, 0, fmt.Errorf("rate limiter: %w", err)
	}
	return res.Allowed > 0, res.RetryAfter, nil
}
