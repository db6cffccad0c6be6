package usecase

import (
	"context"
	"fmt"

	eventRepo "venue-calendar/internal/event/repository"
	"venue-calendar/internal/feed"
	"venue-calendar/internal/model"
)

const (
	defaultHorizonMonths = 12
	minHorizonMonths     = 9
	defaultEventLimit    = 240
)

// BuildContext fetches the events and closures of the feed window.
// The window opens one day before now and spans the configured horizon,
// never less than nine months.
func (uc *implUseCase) BuildContext(ctx context.Context) (model.FeedContext, error) {
	if uc.events == nil {
		return model.FeedContext{}, feed.ErrMissingCollaborator
	}

	now := uc.now().In(uc.dates.Location())
	horizon := uc.cfg.HorizonMonths
	if horizon <= 0 {
		horizon = defaultHorizonMonths
	}
	since := now.AddDate(0, 0, -1)
	until := now.AddDate(0, horizon, 0)
	if floor := since.AddDate(0, minHorizonMonths, 0); until.Before(floor) {
		until = floor
	}

	limit := uc.cfg.EventLimit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	events, err := uc.events.ListEvents(ctx, eventRepo.ListEventsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "feed.usecase.BuildContext: list events: %v", err)
		return model.FeedContext{}, fmt.Errorf("list events: %w", err)
	}

	closures, err := uc.events.ListClosures(ctx, eventRepo.ListClosuresOptions{From: since, To: until})
	if err != nil {
		uc.l.Warnf(ctx, "feed.usecase.BuildContext: list closures, serving events only: %v", err)
		closures = nil
	}

	return model.FeedContext{
		Events:       events,
		Closures:     closures,
		Since:        since,
		Until:        until,
		Now:          now,
		Location:     uc.dates.Location(),
		TimezoneName: uc.cfg.TimezoneName,
		CalendarName: uc.cfg.CalendarName,
		SiteURL:      uc.cfg.SiteURL,
	}, nil
}

// Entries resolves the merged, ordered entries of fc.
func (uc *implUseCase) Entries(ctx context.Context, fc model.FeedContext) []model.Entry {
	return uc.resolver.Collect(ctx, fc, uc.cfg.ResolverLimit)
}

// HistoryEntries resolves the full history of fc's events.
func (uc *implUseCase) HistoryEntries(ctx context.Context, fc model.FeedContext) []model.Entry {
	return uc.resolver.CollectHistory(ctx, fc)
}
