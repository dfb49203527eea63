package db

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Deepsoni5/kucash-sub001/internal/config"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. Redis is optional
// here; it only backs the OTP resend throttle, so callers treat a nil client
// as "throttling disabled" rather than a startup failure.
func NewRedisClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: int(cfg.RedisDB)})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
