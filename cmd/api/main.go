package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"venue-calendar/config"
	"venue-calendar/config/postgre"
	_ "venue-calendar/docs" // Swagger docs
	"venue-calendar/internal/bootstrap"
	syncHTTP "venue-calendar/internal/calsync/delivery/http"
	feedHTTP "venue-calendar/internal/feed/delivery/http"
	"venue-calendar/internal/httpserver"
	"venue-calendar/internal/middleware"
	"venue-calendar/pkg/log"
)

// @title       Venue Calendar API
// @description Tokenized iCalendar feed of venue events and closures, with Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Venue Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()
	logger.Info(ctx, "PostgreSQL connected")

	// 4. Domains
	feedUC, composer := bootstrap.NewFeed(ctx, logger, db, cfg.Feed)
	syncUC := bootstrap.NewSync(logger, feedUC, composer, cfg.CalendarSync)

	if cfg.Internal.APIKey == "" {
		logger.Warn(ctx, "INTERNAL_API_KEY is empty: admin routes will reject every request")
	}
	mw := middleware.New(logger, cfg.Internal.APIKey)

	feedHandler := feedHTTP.New(logger, feedUC, feedHTTP.GateConfig{
		QueryParam: cfg.Feed.QueryParam,
		TokenParam: cfg.Feed.TokenParam,
		Filename:   cfg.Feed.Filename,
	}, middleware.NewIPLimiter(cfg.Feed.RateLimitPerMin))
	syncHandler := syncHTTP.New(logger, syncUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Middleware:  mw,
		FeedHandler: feedHandler,
		SyncHandler: syncHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
