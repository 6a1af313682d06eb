package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/taxbit-export/internal/config"
	"github.com/grachmannico95/taxbit-export/internal/handler"
	"github.com/grachmannico95/taxbit-export/internal/middleware"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	exportHandler *handler.ExportHandler
	healthHandler *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	exportHandler *handler.ExportHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		exportHandler: exportHandler,
		healthHandler: healthHandler,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	if s.cfg.Server.BodyLimit != "" {
		s.echo.Use(echoMiddleware.BodyLimit(s.cfg.Server.BodyLimit))
	}
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	exports := s.echo.Group("/exports")
	exports.POST("", s.exportHandler.Upload)
	exports.GET("/:id", s.exportHandler.GetStatus)
	exports.GET("/:id/records", s.exportHandler.GetRecords)
	exports.GET("/:id/assets", s.exportHandler.GetAssets)
	exports.GET("/:id/rejects", s.exportHandler.GetRejects)
	exports.GET("/:id/csv", s.exportHandler.DownloadCSV)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
