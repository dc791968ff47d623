package middleware

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

// RequestLogger writes one structured access log line per request.
// Policy rejections stash their cause under "error" via the handler;
// it is logged here at info level, not as a system error.
func RequestLogger(log zerolog.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		requestID := ""
		if v, ok := c.Get(requestIDKey); ok {
			requestID, _ = v.(string)
		}
		cause := ""
		if v, ok := c.Get("error"); ok {
			cause, _ = v.(string)
		}

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", requestID).
			Str("error", cause).
			Msg("request")
	}
}
