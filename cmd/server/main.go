package main

import (
	"os"

	"github.com/anonto42/nano-midea/notifications/internal/assets"
	"github.com/anonto42/nano-midea/notifications/internal/metrics"
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
	"github.com/anonto42/nano-midea/notifications/internal/router"
	"github.com/anonto42/nano-midea/notifications/internal/validators"
	"github.com/anonto42/nano-midea/notifications/pkg/config"
	"github.com/anonto42/nano-midea/notifications/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New("notifications-panel", cfg.Env, cfg.LogLevel)

	// Seed the in-memory store
	repo, err := repositories.NewMemoryNotificationRepository(models.SeedNotifications())
	if err != nil {
		log.Error("Failed to seed notifications", "error", err)
		os.Exit(1)
	}
	p := panel.New(repo, assets.NewBaseURLResolver(cfg.AssetBaseURL), metrics.PrometheusRecorder{}, log)

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// Metrics on their own port
	go func() {
		m := echo.New()
		m.HideBanner = true
		m.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
		if err := m.Start(":" + cfg.MetricsPort); err != nil {
			log.Error("Metrics server stopped", "error", err)
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, log)

	// Setup routes and dependencies
	router.SetupRoutes(e, p, cfg.StaticDir, log)

	// Start server
	log.Info("Starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
