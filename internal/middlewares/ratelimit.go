package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ekovalova/contactbook/internal/logger"
)

// RedisCmd is the subset of the Redis client used by the limiter.
type RedisCmd interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter implements a fixed-window counter over Redis.
type RedisLimiter struct {
	client RedisCmd
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit requests per window.
func NewRedisLimiter(client RedisCmd, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the request is
// within the limit. The first hit in a window sets the expiry.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, "ratelimit:"+key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.limit, nil
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware returns a middleware enforcing a per-caller request
// limit. Callers are keyed by bearer token when present, falling back to
// the remote address. A limiter backend failure fails open.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := r.Header.Get("Authorization")
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, err := limiter.Allow(ctx, key)
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable, failing open", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
