package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourorg/options-dashboard/internal/client"
	"github.com/yourorg/options-dashboard/internal/config"
	"github.com/yourorg/options-dashboard/internal/handler"
	"github.com/yourorg/options-dashboard/internal/middleware"
	"github.com/yourorg/options-dashboard/internal/repository"
	"github.com/yourorg/options-dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the record store
	rdb, err := connectToRedis(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Register custom request validations
	handler.RegisterValidations()

	// Initialize repositories
	assetRepo := repository.NewAssetRepository(rdb, logger)
	optionRepo := repository.NewOptionRepository(rdb, logger)
	statsRepo := repository.NewStatsRepository(rdb, logger)

	// Initialize clients
	bybitClient := client.NewBybitClient(
		cfg.Bybit.BaseURL,
		cfg.Bybit.Timeout,
		cfg.Bybit.MaxRetries,
		logger,
	)

	// Initialize services
	assetService := service.NewAssetService(assetRepo, bybitClient, logger)
	optionsService := service.NewOptionsService(optionRepo, cfg.Options.ScanLimit, logger)
	statsService := service.NewStatsService(statsRepo, logger)

	// Initialize handlers
	assetHandler := handler.NewAssetHandler(assetService, logger)
	optionsHandler := handler.NewOptionsHandler(optionsService, logger)
	statsHandler := handler.NewStatsHandler(statsService, cfg.Options.StreamInterval, logger)

	// Set up HTTP server with Gin
	router := setupRouter(assetHandler, optionsHandler, statsHandler, logger, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

func createLogger(level string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Create logger config
	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func connectToRedis(redisConfig config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
		PoolSize: redisConfig.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func setupRouter(
	assetHandler *handler.AssetHandler,
	optionsHandler *handler.OptionsHandler,
	statsHandler *handler.StatsHandler,
	logger *zap.Logger,
	cfg *config.Config,
) *gin.Engine {
	router := gin.New()

	// Use middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Asset registry routes
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.GetAssets)
			assets.POST("", assetHandler.AddAsset)
			assets.POST("/:symbol/toggle", assetHandler.ToggleAsset)
			assets.DELETE("/:symbol", assetHandler.RemoveAsset)
		}

		// Instrument view routes
		v1.GET("/options/:asset", optionsHandler.GetOptions)
		v1.GET("/expiries/:asset", optionsHandler.GetExpiries)

		// Stats routes
		v1.GET("/stats", statsHandler.GetStats)
		v1.GET("/stats/stream", statsHandler.StreamStats)
	}

	return router
}
