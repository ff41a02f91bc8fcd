package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"records-dashboard/internal/config"
	"records-dashboard/internal/database"
	"records-dashboard/internal/handlers"
	"records-dashboard/internal/middleware"
	"records-dashboard/internal/repositories"
	"records-dashboard/internal/services"
	"records-dashboard/internal/validation"
	"records-dashboard/internal/view"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	handlerOptions := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, handlerOptions)
	if cfg.IsProduction() {
		logHandler = slog.NewJSONHandler(os.Stdout, handlerOptions)
	}
	slog.SetDefault(slog.New(logHandler))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	unprocessedRepo := repositories.NewUnprocessedRecordRepository(db.DB)
	processedRepo := repositories.NewProcessedRecordRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	reportService := services.NewReportService(processedRepo, metrics)
	triageService := services.NewTriageService(processedRepo, metrics)

	dashboardHandler := handlers.NewDashboardHandler(reportService)
	adminHandler := handlers.NewAdminHandler(unprocessedRepo)
	recordsHandler := handlers.NewRecordsHandler(processedRepo, triageService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validation.NewEchoValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.Logger())

	e.GET("/", dashboardHandler.Dashboard)
	e.GET("/admin", adminHandler.ListUnprocessedRecords)
	e.GET("/record_transformer", recordsHandler.BrowseRecords)
	e.POST("/update_categories", recordsHandler.UpdateCategories)
	e.POST("/delete_records", recordsHandler.DeleteRecords)

	e.GET("/healthz", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped gracefully")
}
