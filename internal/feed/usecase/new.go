package usecase

import (
	"time"

	eventRepo "venue-calendar/internal/event/repository"
	"venue-calendar/internal/feed"
	"venue-calendar/internal/feed/compose"
	"venue-calendar/internal/occurrence"
	settingsRepo "venue-calendar/internal/settings/repository"
	"venue-calendar/pkg/datemath"
	pkgLog "venue-calendar/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	events   eventRepo.Repository
	settings settingsRepo.Repository
	resolver *occurrence.Resolver
	composer *compose.Composer
	dates    *datemath.Parser
	cfg      feed.Config
	now      func() time.Time
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new feed UseCase instance. A nil events repository makes
// every context build fail with feed.ErrMissingCollaborator.
func New(
	l pkgLog.Logger,
	events eventRepo.Repository,
	settings settingsRepo.Repository,
	cfg feed.Config,
	opts ...Option,
) *implUseCase {
	dates := datemath.NewParserIn(cfg.Timezone)
	if cfg.TimezoneName == "" {
		cfg.TimezoneName = dates.Location().String()
	}

	var rows occurrence.RowReader
	if events != nil {
		rows = events
	}

	uc := &implUseCase{
		l:        l,
		events:   events,
		settings: settings,
		resolver: occurrence.New(l, rows, dates),
		composer: compose.New(dates, cfg.TypeColors),
		dates:    dates,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Composer exposes the text composition rules shared with calendar sync.
func (uc *implUseCase) Composer() *compose.Composer {
	return uc.composer
}
