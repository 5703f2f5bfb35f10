package middleware

import (
	"github.com/clovisdasilvaneto/clockin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger decorates the request context with a logger carrying the
// request id, so every service log line can be correlated.
func ContextLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		logger := zap.L().With(zap.String("request_id", rid))
		ctx := contextutil.WithLogger(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
