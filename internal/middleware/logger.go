package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/torislove/gomandap-server/internal/logging"
)

const headerRequestID = "X-Request-ID"

// RequestLogger tags every request with an X-Request-ID, injects a child
// logger into the request context and logs the completed request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := logger.With().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Logger()

		c.Header(headerRequestID, reqID)
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), child))

		c.Next()

		child.Info().
			Int("status", c.Writer.Status()).
			Float64("latency_ms", float64(time.Since(start).Milliseconds())).
			Msg("request completed")
	}
}
