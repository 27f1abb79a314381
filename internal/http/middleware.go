package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"portfolio/backend/internal/handler"
	"portfolio/backend/internal/i18n"
	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/service"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			switch {
			case status >= 500:
				logger.Error("http request", args...)
			case status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Debug("http request", args...)
			}

			return nil
		}
	}
}

// BodyLimitMiddleware rejects request bodies over limit with a 400 in the API
// error shape instead of echo's bare 413.
func BodyLimitMiddleware(limit string) echo.MiddlewareFunc {
	limiter := middleware.BodyLimit(limit)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limiter(next)
		return func(c echo.Context) error {
			err := limited(c)
			if !errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return err
			}
			message := "request body too large"
			if c.Path() == imageUploadPath {
				message = "file exceeds 5MB limit"
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
		}
	}
}

// LanguageMiddleware resolves the content language from Accept-Language and
// stores it on the request context.
func LanguageMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := i18n.ResolveLanguage(c.Request().Header.Get("Accept-Language"))
			c.Set(handler.LanguageContextKey, lang)
			header := c.Response().Header()
			header.Set("Content-Language", lang)
			header.Add("Vary", "Accept-Language")
			return next(c)
		}
	}
}

// JWTAuthMiddleware creates a middleware that validates bearer tokens and
// stores the operator on the request context.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					token = strings.TrimSpace(parts[1])
				}
			}

			if token == "" {
				logger.Warn("auth missing",
					"module", "http",
					"action", "request",
					"resource", "auth",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing authentication",
				})
			}

			operator, err := authService.ValidateToken(token)
			if err != nil {
				logger.Warn("auth invalid",
					"module", "http",
					"action", "request",
					"resource", "auth",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}

			c.Set(handler.OperatorContextKey, operator)
			return next(c)
		}
	}
}

// ContactRateLimitMiddleware allows perMinute contact submissions per client
// IP, with a burst of the same size.
func ContactRateLimitMiddleware(perMinute int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 10 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("contact rate limited",
				"module", "http",
				"action", "create",
				"resource", "contact",
				"result", "failed",
				"remote_ip", identifier,
			)
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "too many requests",
			})
		},
	})
}
