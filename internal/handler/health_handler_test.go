package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		storage  StorageChecker
		wantCode int
		wantBody string
	}{
		{
			name:     "no storage",
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
		{
			name:     "storage reachable",
			storage:  pingFunc(func(context.Context) error { return nil }),
			wantCode: http.StatusOK,
			wantBody: `"driver":"sqlite"`,
		},
		{
			name:     "storage down",
			storage:  pingFunc(func(context.Context) error { return errors.New("database is closed") }),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"status":"degraded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/health", NewHealthHandler(tt.storage, "sqlite").Check)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
