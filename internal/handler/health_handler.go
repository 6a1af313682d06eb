package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

type StorageChecker interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage StorageChecker
	driver  string
}

// NewHealthHandler reports the service healthy while storage answers a ping.
// A nil storage is treated as always reachable.
func NewHealthHandler(storage StorageChecker, driver string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		driver:  driver,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	status, code := "ok", http.StatusOK
	storageStatus := "ok"

	if h.storage != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := h.storage.Ping(ctx); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
			storageStatus = err.Error()
		}
	}

	return c.JSON(code, map[string]interface{}{
		"status": status,
		"storage": map[string]string{
			"driver": h.driver,
			"status": storageStatus,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
