package feed

import (
	"context"

	"venue-calendar/internal/model"
)

// UseCase defines the business logic of the public calendar feed.
type UseCase interface {
	// BuildContext assembles the feed window and the events and closures in it.
	BuildContext(ctx context.Context) (model.FeedContext, error)

	// Entries resolves the merged, ordered entries of a feed context.
	Entries(ctx context.Context, fc model.FeedContext) []model.Entry

	// HistoryEntries resolves every occurrence of the context's events, past
	// and cancelled included, for sync and export.
	HistoryEntries(ctx context.Context, fc model.FeedContext) []model.Entry

	// RenderICS serializes a feed context as an RFC 5545 document.
	RenderICS(ctx context.Context, fc model.FeedContext) []byte

	// Feed builds a fresh context and renders it. A failed build yields an
	// empty but valid calendar.
	Feed(ctx context.Context) []byte

	// Enabled reports whether the feed is published at all.
	Enabled() bool

	// Authorize checks a caller-supplied token against the stored one.
	Authorize(ctx context.Context, token string) error

	// FeedURL returns the subscription URL, creating a token when asked.
	FeedURL(ctx context.Context, input FeedURLInput) (FeedURLOutput, error)

	// RegenerateToken replaces the token, invalidating distributed URLs.
	RegenerateToken(ctx context.Context) (FeedURLOutput, error)

	// SetToken stores an externally supplied token after sanitizing it.
	SetToken(ctx context.Context, input SetTokenInput) (FeedURLOutput, error)
}
