package middleware

import (
	"net/http"

	"nexttoyou/config"
	"nexttoyou/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles the interactive search routes per user.
type RateLimitMiddleware struct {
	limit echo.MiddlewareFunc
}

// NewRateLimitMiddleware builds a token-bucket limiter keyed by the
// authenticated user, or by client IP for anonymous requests.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled {
		return &RateLimitMiddleware{}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rl.RequestsPerSecond),
		Burst:     rl.Burst,
		ExpiresIn: rl.ExpiresIn,
	})

	return &RateLimitMiddleware{
		limit: echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store:               store,
			IdentifierExtractor: rateLimitIdentifier,
			ErrorHandler: func(c echo.Context, _ error) error {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Unable to identify caller", nil)
			},
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return response.TooManyRequests(c)
			},
		}),
	}
}

// Limit applies the limiter, or passes through when rate limiting is disabled.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if m.limit == nil {
		return next
	}

	return m.limit(next)
}

func rateLimitIdentifier(c echo.Context) (string, error) {
	if userID, ok := GetUserID(c); ok {
		return "user:" + userID.String(), nil
	}

	return "ip:" + c.RealIP(), nil
}
