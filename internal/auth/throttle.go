package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResendThrottle rate-limits OTP sends per mobile number. Backed by Redis
// SET NX; when Redis is not configured or unreachable the throttle fails
// open.
type ResendThrottle struct {
	client *redis.Client
	window time.Duration
}

func NewResendThrottle(client *redis.Client, window time.Duration) *ResendThrottle {
	return &ResendThrottle{client: client, window: window}
}

// Allow reports whether an OTP may be sent to mobile right now, and reserves
// the slot when it may.
func (t *ResendThrottle) Allow(ctx context.Context, mobile string) bool {
	if t == nil || t.client == nil || t.window <= 0 {
		return true
	}
	ok, err := t.client.SetNX(ctx, "otp:resend:"+NormalizeMobile(mobile), 1, t.window).Result()
	if err != nil {
		return true
	}
	return ok
}
