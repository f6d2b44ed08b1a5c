package middleware

import (
	"time"

	"github.com/automotiveconsulting/site-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetGlobalLogger()
		logger.Info("%s %s | %d | %s | %s | %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			c.GetString("RequestID"),
			time.Since(start),
		)
	}
}
