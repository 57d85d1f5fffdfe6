package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/weatherlookup/backend/internal/config"
	"github.com/weatherlookup/backend/internal/delivery/http"
	"github.com/weatherlookup/backend/internal/domain"
	"github.com/weatherlookup/backend/internal/logger"
	"github.com/weatherlookup/backend/internal/repository/postgres"
	"github.com/weatherlookup/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Dependency Injection: Repositories
	repo, closeRepo := openSearchLogRepository(cfg.DatabaseURL, zl)
	defer closeRepo()

	// Dependency Injection: Services
	weatherClient := service.NewOpenWeatherClient(cfg.OpenWeather, zl.Named("openweather"))
	auditLogger := service.NewAuditLogger(repo, zl.Named("audit"))
	weatherSvc := service.NewWeatherService(weatherClient, auditLogger, zl.Named("weather"))

	// Fiber App
	app := http.NewApp(http.AppConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AccessLog:    true,
	})

	// Routes
	http.SetupRoutes(app, http.NewHandler(weatherSvc, zl.Named("http")))

	// Graceful shutdown
	go func() {
		zl.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zl.Warn("Server forced to shutdown", zap.Error(err))
	}
	zl.Info("Server exited gracefully")
}

// openSearchLogRepository connects to PostgreSQL and migrates the schema,
// falling back to the in-memory log when no database is usable.
func openSearchLogRepository(databaseURL string, zl *zap.Logger) (domain.SearchLogRepository, func()) {
	if databaseURL == "" {
		zl.Warn("DATABASE_URL not set, search logs kept in memory")
		return postgres.NewMemoryRepository(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		zl.Warn("Could not connect to database, search logs kept in memory", zap.Error(err))
		return postgres.NewMemoryRepository(), func() {}
	}

	repo := postgres.NewSearchLogRepository(pool)
	if err := repo.Health(ctx); err != nil {
		zl.Warn("Database unreachable, search logs kept in memory", zap.Error(err))
		pool.Close()
		return postgres.NewMemoryRepository(), func() {}
	}
	if err := repo.Migrate(ctx); err != nil {
		zl.Fatal("Failed to migrate database", zap.Error(err))
	}

	zl.Info("Connected to PostgreSQL")
	return repo, pool.Close
}
