package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger assigns a request ID, logs every request with latency and
// recovers from handler panics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic method=%s path=%s request_id=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path, requestID, err.Error(), debug.Stack(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			log.Printf(
				"request method=%s path=%s query=%s status=%d client_ip=%s request_id=%s latency=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Request.URL.RawQuery,
				c.Writer.Status(),
				c.ClientIP(),
				requestID,
				time.Since(start),
			)
		}()

		c.Next()
	}
}
