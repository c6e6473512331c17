package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"proposal-tracker-backend/internal/common/logger"
)

// Recovery turns handler panics into a structured 500 response instead of
// dropping the connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": fmt.Sprintf("%v", recovered),
		})
	})
}
