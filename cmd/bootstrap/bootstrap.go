package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"court-booking-backend/config"
	deliveryHttp "court-booking-backend/internal/delivery/http"
	"court-booking-backend/internal/delivery/http/handler"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/infrastructure/cache"
	"court-booking-backend/internal/infrastructure/database"
	"court-booking-backend/internal/repository"
	"court-booking-backend/internal/service"
	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/jwt"
	"court-booking-backend/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Rebuild slot holds before accepting traffic so a Redis flush cannot
	// allow double-booking.
	slotHoldService := service.NewSlotHoldService(db, redisClient, logrus.StandardLogger(), cfg.Booking.HoldTTL)
	if err := slotHoldService.SyncOnStartup(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to sync slot holds: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, slotHoldService)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, slotHoldService *service.SlotHoldService) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	locationRepo := repository.NewLocationRepository()
	courtRepo := repository.NewCourtRepository()
	bookingRepo := repository.NewBookingRepository()
	promotionRepo := repository.NewPromotionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	locationUsecase := usecase.NewLocationUsecase(db, log, locationRepo, auditService)
	courtUsecase := usecase.NewCourtUsecase(db, log, courtRepo, locationRepo, bookingRepo, auditService, cfg.Booking)
	playerBookingUsecase := usecase.NewPlayerBookingUsecase(db, log, bookingRepo, courtRepo, promotionRepo, userRepo, slotHoldService, auditService, cfg.Booking)
	ownerBookingUsecase := usecase.NewOwnerBookingUsecase(db, log, bookingRepo, locationRepo, slotHoldService, auditService)
	promotionUsecase := usecase.NewPromotionUsecase(db, log, promotionRepo, locationRepo, auditService)
	statisticsUsecase := usecase.NewStatisticsUsecase(db, log, bookingRepo)
	userAdminUsecase := usecase.NewUserAdminUsecase(db, log, userRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	courtHandler := handler.NewCourtHandler(courtUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(playerBookingUsecase, customValidator)
	ownerBookingHandler := handler.NewOwnerBookingHandler(ownerBookingUsecase, customValidator)
	promotionHandler := handler.NewPromotionHandler(promotionUsecase, customValidator)
	statisticsHandler := handler.NewStatisticsHandler(statisticsUsecase)
	userAdminHandler := handler.NewUserAdminHandler(userAdminUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		locationHandler,
		courtHandler,
		bookingHandler,
		ownerBookingHandler,
		promotionHandler,
		statisticsHandler,
		userAdminHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
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
