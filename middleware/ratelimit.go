package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"

	"tourist-safety/models"
)

// RateLimit throttles per client IP. rate uses the limiter format, e.g.
// "10-M" for ten requests a minute. Store errors let the request through.
func RateLimit(rate string, logger *zap.Logger) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}

	return mgin.NewMiddleware(
		limiter.New(memory.NewStore(), r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: "Too many attempts, try again later",
				Error:   "rate_limited",
			})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			logger.Warn("rate limiter store failed", zap.Error(err))
			c.Next()
		}),
	), nil
}
