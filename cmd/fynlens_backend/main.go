package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fynlens/fynlens_backend/internal/adapters/aggapi"
	"github.com/fynlens/fynlens_backend/internal/adapters/amqp"
	"github.com/fynlens/fynlens_backend/internal/adapters/database/sqlitedb"
	portsrepo "github.com/fynlens/fynlens_backend/internal/core/ports/repositories"
	"github.com/fynlens/fynlens_backend/internal/core/services"
	"github.com/fynlens/fynlens_backend/internal/handlers"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/fynlens/fynlens_backend/internal/utils"
	"github.com/fynlens/fynlens_backend/pkg/config"
	"github.com/fynlens/fynlens_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Local sqlite rate cache, enabled only when a path is configured.
	var rateCache portsrepo.RateCacheRepository
	if cfg.CacheDBPath != "" {
		logger.Info("Running database migrations...")
		if err := sqlitedb.RunMigrations(cfg.CacheDBPath); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		db, err := database.NewSQLiteDB(cfg.CacheDBPath)
		if err != nil {
			logger.Error("Failed to open cache database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		rateCache = sqlitedb.NewRateCacheRepository(db)
		logger.Info("Exchange rate cache enabled", slog.String("path", cfg.CacheDBPath))
	}

	reader := aggapi.NewClient(cfg.AggregateAPIURL, cfg.AggregateAPIToken,
		aggapi.WithDefaultDayOfMonthPaid(cfg.DefaultDayOfMonthPaid))
	serviceContainer := services.NewServiceContainer(reader, rateCache, cfg.AnchorCurrency)

	// Warm the snapshot; the first request triggers a fetch if this fails.
	if _, err := serviceContainer.Aggregate.Refresh(context.Background()); err != nil {
		logger.Warn("Initial aggregate refresh failed", slog.String("error", err.Error()))
	}

	// AMQP subscriber for upstream refresh notifications, optional.
	if cfg.AMQPURL != "" {
		subscriber, err := amqp.NewSubscriber(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, serviceContainer.Aggregate, logger)
		if err != nil {
			logger.Error("Failed to connect AMQP subscriber", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer subscriber.Close()
		if err := subscriber.Start(context.Background()); err != nil {
			logger.Error("Failed to start AMQP subscriber", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("AMQP subscriber started", slog.String("queue", cfg.AMQPQueue))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()
	r.Use(middleware.PosthogMiddleware(posthogClient))

	handlers.RegisterRoutes(r, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
