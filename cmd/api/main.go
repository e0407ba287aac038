package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/nytimes"
	"bookshelf/internal/platform/postgres"
	"bookshelf/internal/review"
	"bookshelf/internal/web"
)

const userAgent = "bookshelf/1.0"

func main() {
	cfg := config.MustLoad(os.Args[1:])

	setupLogger(cfg)

	ctx := context.Background()

	dbPool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("cannot create db pool", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	// A failed ping is logged only; the listener still starts.
	_ = postgres.Ping(ctx, dbPool, postgres.DSN(cfg.Database))

	templates := web.MustLoadTemplates()

	bookService := book.NewService(book.NewPostgresRepo(dbPool, 5*time.Second))

	var reviewCache review.Cache
	if rdb := review.NewRedisClient(ctx, cfg.Redis); rdb != nil {
		defer rdb.Close()
		reviewCache = review.NewRedisCache(rdb, cfg.Redis.TTL)
	}
	reviewClient := nytimes.NewClient(cfg.Reviews.URL, cfg.Reviews.APIKey, userAgent, cfg.Reviews.RPS)
	reviewService := review.NewService(reviewClient, reviewCache)

	metrics := httpx.NewMetrics()

	handler := newRouter(routerDeps{
		books:     book.NewHTTPHandler(bookService, templates),
		reviews:   review.NewHTTPHandler(reviewService, templates),
		renderer:  templates,
		ready:     dbPool.Ping,
		metrics:   metrics,
		rateLimit: httpx.NewRateLimitMiddleware(cfg.Limits.RPS, cfg.Limits.Burst),
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("application started", slog.Int("port", cfg.Port), slog.Time("at", time.Now()))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
