package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitConcurrentRequests rejects requests with 429 once maxConcurrent are in flight.
// maxConcurrent <= 0 disables the limit.
func LimitConcurrentRequests(maxConcurrent int) gin.HandlerFunc {
	if maxConcurrent <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	semaphore := make(chan struct{}, maxConcurrent)

	return func(c *gin.Context) {
		select {
		case semaphore <- struct{}{}:
			defer func() { <-semaphore }()
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "too many concurrent requests",
			})
		}
	}
}
