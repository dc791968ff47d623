package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reinstack44/CollegeEventSystem/internal/config"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

// tokenBucketScript implements a refilling token bucket entirely inside
// redis so that every instance behind the load balancer shares one
// budget per client.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RateLimit throttles the mutating endpoints. Redis being down never
// blocks traffic: the limiter fails open and logs the error.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client, log zerolog.Logger) ginext.HandlerFunc {
	if !cfg.Enabled || rdb == nil {
		return func(c *ginext.Context) { c.Next() }
	}

	return func(c *ginext.Context) {
		key := cfg.Prefix + ":" + c.ClientIP() + ":" + c.FullPath()

		vals, err := tokenBucketScript.Run(
			c.Request.Context(), rdb, []string{key},
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			cfg.RefillInterval.Milliseconds(),
			int64(cfg.TTL/time.Second),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			log.Warn().
				Str("key", key).
				Msg("rate limiter unavailable, failing open")
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{
				"error":       "too many requests",
				"retry_after": secs,
			})
			return
		}

		c.Next()
	}
}
