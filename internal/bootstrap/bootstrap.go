// Package bootstrap assembles the feed and sync use cases from configuration.
package bootstrap

import (
	"context"

	"venue-calendar/config"
	"venue-calendar/internal/calsync"
	syncUC "venue-calendar/internal/calsync/usecase"
	eventRepo "venue-calendar/internal/event/repository/postgre"
	"venue-calendar/internal/feed"
	"venue-calendar/internal/feed/compose"
	feedUC "venue-calendar/internal/feed/usecase"
	settingsRepo "venue-calendar/internal/settings/repository/postgre"
	"venue-calendar/pkg/datemath"
	"venue-calendar/pkg/log"
	"venue-calendar/pkg/postgres"
)

// NewFeed builds the feed use case over PostgreSQL. An invalid timezone
// falls back to UTC with a warning.
func NewFeed(ctx context.Context, logger log.Logger, db *postgres.DB, c config.FeedConfig) (feed.UseCase, *compose.Composer) {
	timezone := c.Timezone
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dates, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}

	uc := feedUC.New(logger, eventRepo.New(db.Pool(), logger), settingsRepo.New(db.Pool(), logger), feed.Config{
		Enabled:       c.Enabled,
		CalendarName:  c.CalendarName,
		Timezone:      dates.Location(),
		TimezoneName:  timezone,
		SiteURL:       c.SiteURL,
		QueryParam:    c.QueryParam,
		TokenParam:    c.TokenParam,
		Filename:      c.Filename,
		HorizonMonths: c.HorizonMonths,
		EventLimit:    c.EventLimit,
		ResolverLimit: c.ResolverLimit,
		TypeColors:    c.TypeColors,
	})
	return uc, uc.Composer()
}

// NewSync builds the calendar sync use case on top of the feed.
func NewSync(logger log.Logger, f feed.UseCase, composer *compose.Composer, c config.CalendarSyncConfig) calsync.UseCase {
	return syncUC.New(logger, f, composer, calsync.Config{
		CalendarID:  c.CalendarID,
		AccessToken: c.AccessToken,
		Endpoint:    c.Endpoint,
		IDPrefix:    c.IDPrefix,
		MaxEvents:   c.MaxEvents,
		Timeout:     c.Timeout,
	}, nil)
}
