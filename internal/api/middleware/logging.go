package middleware

import (
	"time"

	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the shared logger.
// Pass enabled=false to install a no-op (request logging is opt-in via
// LOG_REQUESTS).
func RequestLogger(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logging.GetLogger().LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
