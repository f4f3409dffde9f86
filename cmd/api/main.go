package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cha-pyeong/docs" // This is for Swagger
	"cha-pyeong/internal/config"
	"cha-pyeong/internal/database"
	"cha-pyeong/internal/handlers"
	"cha-pyeong/internal/logger"
	"cha-pyeong/internal/middleware"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Cha-Pyeong API
// @version 1.0
// @description Backend API for the cha-pyeong tea tasting assessment platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	teaRepo := repository.NewTeaRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	assessmentRepo := repository.NewAssessmentRepository(db.DB)
	scoreRepo := repository.NewScoreRepository(db.DB)
	exportRepo := repository.NewExportRepository(db.DB)

	// Initialize services
	teaSvc := service.NewTeaService(teaRepo, assessmentRepo)
	assessmentSvc := service.NewAssessmentService(teaRepo, userRepo, assessmentRepo, scoreRepo)
	userSvc := service.NewUserService(userRepo)
	exportSvc := service.NewExportService(exportRepo)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(&cfg.Auth, userRepo)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	metricsMw := middleware.NewMetricsMiddleware()

	// Initialize handlers
	teaHandler := handlers.NewTeaHandler(teaSvc)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentSvc)
	adminHandler := handlers.NewAdminHandler(userSvc, exportSvc)

	// Setup router
	mux := http.NewServeMux()

	// Tea catalog routes. Listing and reading are open to every role; the
	// optional token only upgrades what the response contains.
	mux.Handle("GET /api/v1/teas",
		authMw.OptionalAuth(
			metricsMw.Handler(
				http.HandlerFunc(teaHandler.ListTeas),
			),
		),
	)
	mux.Handle("GET /api/v1/teas/{id}",
		authMw.OptionalAuth(
			metricsMw.Handler(
				http.HandlerFunc(teaHandler.GetTea),
			),
		),
	)
	mux.Handle("GET /api/v1/teas/{id}/average",
		authMw.OptionalAuth(
			metricsMw.Handler(
				http.HandlerFunc(teaHandler.GetTeaAverage),
			),
		),
	)
	mux.Handle("GET /api/v1/teas/{id}/assessments",
		authMw.OptionalAuth(
			metricsMw.Handler(
				http.HandlerFunc(assessmentHandler.ListForTea),
			),
		),
	)
	mux.Handle("POST /api/v1/teas",
		authMw.Authenticate(
			middleware.RequireRole(models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(teaHandler.CreateTea),
				),
			),
		),
	)

	// Assessment routes
	mux.Handle("POST /api/v1/assessments",
		authMw.Authenticate(
			middleware.RequireRole(models.RolePanel, models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(assessmentHandler.Submit),
				),
			),
		),
	)
	mux.Handle("DELETE /api/v1/assessments/{id}",
		authMw.Authenticate(
			middleware.RequireRole(models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(assessmentHandler.Delete),
				),
			),
		),
	)

	// Admin routes
	mux.Handle("GET /api/v1/admin/export",
		authMw.Authenticate(
			middleware.RequireRole(models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(adminHandler.Export),
				),
			),
		),
	)
	mux.Handle("GET /api/v1/admin/users",
		authMw.Authenticate(
			middleware.RequireRole(models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(adminHandler.ListUsers),
				),
			),
		),
	)
	mux.Handle("PUT /api/v1/admin/users/{id}/role",
		authMw.Authenticate(
			middleware.RequireRole(models.RoleAdmin)(
				metricsMw.Handler(
					http.HandlerFunc(adminHandler.UpdateUserRole),
				),
			),
		),
	)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`))
			if err != nil {
				slog.Error("Failed to write health check response", "error", err)
				return
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`))
		if err != nil {
			slog.Error("Failed to write health check response", "error", err)
			return
		}
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
