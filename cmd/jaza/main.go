package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/jazahq/jaza-backend/internal/pkg/config"
	"github.com/jazahq/jaza-backend/internal/pkg/database"
	"github.com/jazahq/jaza-backend/internal/pkg/health"
	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/pkg/middleware"
	"github.com/jazahq/jaza-backend/internal/pkg/server"
	"github.com/jazahq/jaza-backend/services/income/handler"
	httpHandler "github.com/jazahq/jaza-backend/services/income/handler/http"
	"github.com/jazahq/jaza-backend/services/income/repository"
	"github.com/jazahq/jaza-backend/services/income/usecase"
)

func main() {
	appName := "jaza-backend"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	// Required configuration is validated before anything is served
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Redis is optional; it only backs the callback rate limiter
	var callbackMiddleware []echo.MiddlewareFunc
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		callbackMiddleware = append(callbackMiddleware, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         "ratelimit:payments",
			Limit:       60,
			Period:      time.Minute,
		}))
	}

	// Initialize repository
	incomeRepo := repository.NewIncomeRepo(configs, postgresClient.GetDB())

	// Initialize UseCase
	incomeUC := usecase.NewIncomeUC(incomeRepo, configs)

	// Handlers for HTTP
	incomeHandler := httpHandler.NewIncomeHandler(incomeUC)
	summaryHandler := httpHandler.NewSummaryHandler(incomeUC)
	paymentHandler := httpHandler.NewPaymentHandler(incomeUC)
	profileHandler := httpHandler.NewProfileHandler()

	Handler := handler.NewHandler(incomeHandler, summaryHandler, paymentHandler, profileHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     configs.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e, callbackMiddleware...)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	if redisClient != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
	}

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
