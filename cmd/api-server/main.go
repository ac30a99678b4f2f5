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

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moviehub/internal/catalog"
	"moviehub/internal/config"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
	"moviehub/internal/kvstore"
	"moviehub/internal/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	reviewStore, cacheStore := openStores(cfg, logger)

	reviewRepo := repository.NewReviewRepository(reviewStore, logger)
	reviewService := service.NewReviewService(reviewRepo)

	catalogClient := catalog.NewClient(cfg.TMDBAPIURL, cfg.TMDBAPIKey)
	movieService := service.NewMovieService(catalogClient, cacheStore, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	movies := r.Group("/api/movies")
	handler.NewMovieHandler(movieService).RegisterRoutes(movies)
	handler.NewReviewHandler(reviewService).RegisterRoutes(movies)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// openStores picks the review store backend and the catalog cache. A Redis
// connection failure degrades to an in-memory store rather than refusing to
// start; reviews then live only for the process lifetime.
func openStores(cfg *config.Config, logger *slog.Logger) (kvstore.Store, kvstore.Store) {
	switch cfg.StorageBackend {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			logger.Error("failed to connect to Postgres", "error", err)
			os.Exit(1)
		}
		store, err := kvstore.NewGormStore(db)
		if err != nil {
			logger.Error("failed to prepare kv table", "error", err)
			os.Exit(1)
		}
		logger.Info("review store backed by Postgres")
		return store, kvstore.NewMemoryStore()

	case "memory":
		logger.Info("review store backed by memory (non-durable)")
		return kvstore.NewMemoryStore(), kvstore.NewMemoryStore()

	default: // redis
		reviewStore, err := kvstore.NewRedisStore(cfg.RedisURL, cfg.RedisPassword, 0)
		if err != nil {
			logger.Warn("Redis unreachable, falling back to in-memory review store", "error", err)
			return kvstore.NewMemoryStore(), kvstore.NewMemoryStore()
		}
		cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
		cacheStore, err := kvstore.NewRedisStore(cfg.RedisURL, cfg.RedisPassword, cacheTTL)
		if err != nil {
			logger.Warn("Redis cache unavailable", "error", err)
			return reviewStore, kvstore.NewMemoryStore()
		}
		logger.Info("review store backed by Redis")
		return reviewStore, cacheStore
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
