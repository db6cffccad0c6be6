package usecase

import (
	"context"

	"venue-calendar/internal/calsync"
	"venue-calendar/internal/feed"
	"venue-calendar/internal/feed/compose"
	"venue-calendar/pkg/gcalendar"
	pkgLog "venue-calendar/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	feed     feed.UseCase
	composer *compose.Composer
	cfg      calsync.Config
	clients  calsync.ClientFactory
}

// New creates a new calendar sync UseCase. The feed use case supplies the
// occurrence set and composer the text fields. A nil factory dials the
// Google Calendar API at cfg.Endpoint.
func New(
	l pkgLog.Logger,
	feedUC feed.UseCase,
	composer *compose.Composer,
	cfg calsync.Config,
	clients calsync.ClientFactory,
) *implUseCase {
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = calsync.DefaultMaxEvents
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = calsync.DefaultTimeout
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = calsync.DefaultIDPrefix
	}
	if clients == nil {
		clients = googleClients(cfg.Endpoint)
	}
	return &implUseCase{
		l:        l,
		feed:     feedUC,
		composer: composer,
		cfg:      cfg,
		clients:  clients,
	}
}

func googleClients(endpoint string) calsync.ClientFactory {
	return func(ctx context.Context, accessToken string) (calsync.Upserter, error) {
		return gcalendar.NewClientFromToken(ctx, accessToken, endpoint)
	}
}
