package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderTraceID = "X-Trace-ID"

	maxTraceIDLength = 128
)

// RequestID tags the request context with a trace id, taken from X-Trace-ID
// or X-Request-ID when the caller sent a usable one, and echoes it back.
// Routes carrying an :id parameter also get the upload id in context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := incomingTraceID(c)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			if uploadID := c.Param("id"); uploadID != "" {
				ctx = logger.WithUploadID(ctx, uploadID)
			}
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}

func incomingTraceID(c echo.Context) string {
	for _, header := range []string{HeaderTraceID, echo.HeaderXRequestID} {
		id := c.Request().Header.Get(header)
		if id != "" && len(id) <= maxTraceIDLength && printable(id) {
			return id
		}
	}
	return ""
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
