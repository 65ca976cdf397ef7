package middleware

import (
	"net/http"
	"strconv"

	"linkhop/internal/ratelimit"
	"linkhop/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit throttles by client IP under scope. Limiter failures let the request through.
func RateLimit(l ratelimit.Limiter, scope string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter, err := l.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{Error: "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
