package middleware

import (
	"net/http"
	"time"

	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Logging writes one line per request. Health probes go to debug, client
// errors to warn and server errors to error.
func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the status is known
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"route", c.Path(),
				"status", res.Status,
				"bytes_in", req.ContentLength,
				"bytes_out", res.Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if err != nil {
				fields = append(fields, "error", err)
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				log.Error(req.Context(), "HTTP request", fields...)
			case res.Status >= http.StatusBadRequest:
				log.Warn(req.Context(), "HTTP request", fields...)
			case c.Path() == "/health":
				log.Debug(req.Context(), "HTTP request", fields...)
			default:
				log.Info(req.Context(), "HTTP request", fields...)
			}

			return nil
		}
	}
}
