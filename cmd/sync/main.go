package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"venue-calendar/config"
	"venue-calendar/config/postgre"
	"venue-calendar/internal/bootstrap"
	"venue-calendar/internal/calsync"
	"venue-calendar/pkg/log"
)

type options struct {
	dryRun      bool
	fullHistory bool
	schedule    string
}

// main runs the calendar sync out of band: once, or on a cron schedule
// when one is configured.
func main() {
	var opts options
	flag.BoolVar(&opts.dryRun, "dry-run", false, "count what would be synced without calling the remote calendar")
	flag.BoolVar(&opts.fullHistory, "full-history", false, "sync past and cancelled occurrences too")
	flag.StringVar(&opts.schedule, "schedule", "", "cron expression overriding calendar_sync.schedule")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds every deferred cleanup; main exits only after they ran.
func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	spec := opts.schedule
	if spec == "" {
		spec = cfg.CalendarSync.Schedule
	}
	if spec != "" {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("invalid schedule %q: %w", spec, err)
		}
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	feedUC, composer := bootstrap.NewFeed(ctx, logger, db, cfg.Feed)
	syncUC := bootstrap.NewSync(logger, feedUC, composer, cfg.CalendarSync)

	syncOnce := func() error {
		out, err := syncUC.Sync(ctx, calsync.SyncInput{DryRun: opts.dryRun, FullHistory: opts.fullHistory})
		if err != nil {
			logger.Errorf(ctx, "Sync failed: %v", err)
			return err
		}
		for _, e := range out.Errors {
			logger.Warnf(ctx, "Sync item failed: %s", e)
		}
		logger.Infof(ctx, "Sync done: synced=%d skipped=%d", out.Synced, out.Skipped)
		return nil
	}

	if spec == "" {
		return syncOnce()
	}

	c := cron.New(cron.WithLocation(feedLocation(cfg.Feed.Timezone)))
	if _, err := c.AddFunc(spec, func() { _ = syncOnce() }); err != nil {
		logger.Errorf(ctx, "Invalid schedule %q: %v", spec, err)
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	logger.Infof(ctx, "Calendar sync scheduled: %s", spec)
	c.Start()

	<-ctx.Done()
	logger.Info(context.Background(), "Stopping scheduler, waiting for a running sync...")
	<-c.Stop().Done()
	return nil
}
