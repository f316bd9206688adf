package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"islamic_finance_backend/internal/config"
	"islamic_finance_backend/internal/platform/ratelimit"
)

// Rate-limit backends reported by /healthz.
const (
	RateLimitRedis    = "redis"
	RateLimitMemory   = "memory"
	RateLimitDisabled = "disabled"
)

// NewLimiter creates a Limiter for the analysis endpoints.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process limiter. A nil Limiter means rate limiting is off.
func NewLimiter(rdb *redis.Client, cfg config.Config) (ratelimit.Limiter, string) {
	if cfg.RateLimitPerMinute <= 0 {
		return nil, RateLimitDisabled
	}
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "ratelimit:analysis"), RateLimitRedis
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute), RateLimitMemory
}
