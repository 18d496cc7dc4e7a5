package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/edmetrics/galaxydata/configs"
	"github.com/edmetrics/galaxydata/internal/application/services"
	"github.com/edmetrics/galaxydata/internal/core/domain/galaxy"
	"github.com/edmetrics/galaxydata/internal/core/domain/market"
	"github.com/edmetrics/galaxydata/internal/core/ports"
	"github.com/edmetrics/galaxydata/internal/infrastructure/db"
	"github.com/edmetrics/galaxydata/internal/infrastructure/health"
	"github.com/edmetrics/galaxydata/internal/infrastructure/httpserver"
	"github.com/edmetrics/galaxydata/internal/infrastructure/memcache"
	"github.com/edmetrics/galaxydata/internal/infrastructure/redis"
	"github.com/edmetrics/galaxydata/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.WithField("instance_id", uuid.NewString()).Info("Starting galaxydata lookup service...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	healthCheckers := []ports.HealthChecker{health.NewDBHealthChecker(database)}

	// Optional Redis-backed rate limiting on the public lookup routes
	var rateLimiterService ports.RateLimiterService
	if cfg.RateLimit.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		rateLimitRepo := repositories.NewRateLimitRedisRepository(redisClient)
		rateLimiterService = services.NewRateLimiterService(rateLimitRepo, &services.RateLimiterConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         cfg.RateLimit.KeyPrefix,
		}, logger)
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
	}

	// Aggregation repositories
	marketRepo := repositories.NewMarketRepository(database, logger)
	galaxyRepo := repositories.NewGalaxyRepository(database, logger)

	// One in-process cache per lookup kind, same freshness window
	commodityCache := memcache.New[string, market.Commodity](cfg.Cache.TTL)
	systemCache := memcache.New[uint64, galaxy.System](cfg.Cache.TTL)

	marketService := services.NewMarketService(marketRepo, commodityCache, logger)
	galaxyService := services.NewGalaxyService(galaxyRepo, systemCache, logger)

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		MarketService:      marketService,
		GalaxyService:      galaxyService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
