package redis

import (
	"context"
	"fmt"
	"time"

	"khqr-payment-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// StatusCache implements ports.StatusCache using Redis. It only ever
// receives terminal statuses from the service layer; losing the cache
// costs nothing but an extra provider round trip. It doubles as the
// redis ports.HealthChecker since it owns the only connection.
type StatusCache struct {
	client *goredis.Client
	prefix string
}

// NewStatusCache creates a Redis-backed terminal-status cache.
func NewStatusCache(client *goredis.Client) *StatusCache {
	return &StatusCache{
		client: client,
		prefix: "khqr:status:",
	}
}

// Get retrieves a cached status by fingerprint.
// Returns ("", false, nil) if the key does not exist.
func (c *StatusCache) Get(ctx context.Context, fingerprint string) (domain.PaymentStatus, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+fingerprint).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis status get: %w", err)
	}
	return domain.PaymentStatus(val), true, nil
}

// Set stores a status with TTL.
func (c *StatusCache) Set(ctx context.Context, fingerprint string, status domain.PaymentStatus, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+fingerprint, string(status), ttl).Err(); err != nil {
		return fmt.Errorf("redis status set: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity for health checks.
func (c *StatusCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Name returns the dependency name for health reporting.
func (c *StatusCache) Name() string {
	return "redis"
}
