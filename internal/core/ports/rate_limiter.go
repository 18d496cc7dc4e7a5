package ports

import (
	"context"
	"time"
)

// RateLimitRepository provides the low-level atomic counter operations for
// rate limiting. It abstracts storage (e.g. Redis) and must be safe for
// concurrent use.
type RateLimitRepository interface {
	// IncrementWindow atomically increments the request counter for clientKey
	// in the current fixed window and ensures the key expires after ttl.
	// Returns the updated count and the window start time.
	IncrementWindow(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (count int, windowStart time.Time, err error)
}

// RateLimiterService limits request rates per client key (the caller's IP on
// the public lookup routes). Implementations fail open: a storage error must
// not reject the request.
type RateLimiterService interface {
	// Allow consumes one request unit for clientKey and reports whether it is
	// permitted, how many units remain in the current window, the configured
	// limit, and when the window resets.
	Allow(ctx context.Context, clientKey string) (allowed bool, remaining int, limit int, reset time.Time, err error)
}
