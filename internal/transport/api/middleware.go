package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/metrics"
)

// RequestLogger attaches a request-scoped logger derived from the base
// context logger and counts requests by status class.
func RequestLogger(reg *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			logger := log.FromCtx(req.Context()).With().
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", c.Path()).
				Str("remote_ip", c.RealIP()).
				Logger()

			c.SetRequest(req.WithContext(log.WithLogger(req.Context(), logger)))

			err := next(c)
			if err != nil {
				// let echo write the error so the status below is final
				c.Error(err)
			}

			status := c.Response().Status
			labels := metrics.Labels{
				"method": req.Method,
				"path":   c.Path(),
				"status": intToClass(status),
			}
			reg.Inc(c.Request().Context(), metrics.HTTPRequests, labels, 1)

			if status >= 500 {
				logger.Error().
					Err(err).
					Int("status", status).
					Dur("duration", time.Since(start)).
					Msg("http request failed")
				reg.Inc(c.Request().Context(), metrics.HTTPRequestErrors, labels, 1)
			} else {
				logger.Info().
					Int("status", status).
					Dur("duration", time.Since(start)).
					Msg("http request served")
			}

			return nil
		}
	}
}

func intToClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "0"
	}
}
