package middleware

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/barberbook-api/internal/config"
)

// NewRedisClient connects to redis for rate limiting. Returns nil when no
// address is configured or the server is unreachable; callers treat nil as
// "limiter disabled".
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
