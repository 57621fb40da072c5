package router

import (
	"log/slog"
	"path/filepath"

	"github.com/anonto42/nano-midea/notifications/internal/handlers"
	"github.com/anonto42/nano-midea/notifications/internal/middleware"
	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/labstack/echo/v4"
)

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, p *panel.Panel, staticDir string, logger *slog.Logger) {
	e.Use(middleware.Metrics())

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Avatar and preview references are root-relative /images paths
	if staticDir != "" {
		e.Static("/images", filepath.Join(staticDir, "images"))
		logger.Info("Static image routes configured.", "dir", staticDir)
	}

	notificationHandler := handlers.NewNotificationHandler(p)

	notificationHandler.RegisterPageRoutes(e)
	logger.Info("Page routes configured.")

	api := e.Group("/api/v1")
	notificationHandler.RegisterNotificationRoutes(api)
	logger.Info("Notification routes configured.")

	logger.Info("All routes configured.")
}
