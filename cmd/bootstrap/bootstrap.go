package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-api/config"
	deliveryHttp "dental-clinic-api/internal/delivery/http"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/infrastructure/cache"
	"dental-clinic-api/internal/infrastructure/database"
	"dental-clinic-api/internal/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Redis only backs the dashboard stats cache; the API stays up
	// without it.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, dashboard stats cache disabled: %v", err)
		redisClient = nil
	} else {
		logrus.Info("Redis connected successfully")
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(nil)
	appointmentRepo := repository.NewAppointmentRepository(nil)

	// Seed sample data on an empty store when enabled
	if cfg.App.SeedData {
		seeder := service.NewSeedService(db, log, patientRepo, appointmentRepo, nil)
		if err := seeder.Run(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, nil)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientUsecase, appointmentUsecase, redisClient, cfg.Redis.StatsTTL)

	// Initialize handlers
	rootHandler := handler.NewRootHandler()
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(rootHandler, patientHandler, appointmentHandler, dashboardHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Dental Clinic API starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("API base: http://localhost:%s/api", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
