package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/automotiveconsulting/site-api/internal/api/dto/common"
	"github.com/automotiveconsulting/site-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 response. The stack trace
// stays in the server log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("panic on %s %s (%s): %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString("RequestID"),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Ocurrió un error inesperado en el servidor."))
			}
		}()

		c.Next()
	}
}
