package calsync

import (
	"context"
	"time"

	"venue-calendar/pkg/gcalendar"
)

const (
	DefaultMaxEvents = 200
	DefaultTimeout   = 15 * time.Second
	DefaultIDPrefix  = "evt"
)

// Config holds the configured sync target. Blank input fields fall back
// to these values.
type Config struct {
	CalendarID  string
	AccessToken string
	Endpoint    string
	IDPrefix    string
	MaxEvents   int
	Timeout     time.Duration
}

// SyncInput is the input of Sync.
type SyncInput struct {
	CalendarID  string
	AccessToken string
	MaxEvents   int
	DryRun      bool
	FullHistory bool // past and cancelled occurrences too
	Timeout     time.Duration
}

// SyncOutput summarizes one sync run.
type SyncOutput struct {
	Synced  int
	Skipped int
	Errors  []string
}

// Upserter writes one event into a remote calendar.
type Upserter interface {
	UpsertEvent(ctx context.Context, calendarID string, payload gcalendar.EventPayload) (*gcalendar.Event, error)
}

// ClientFactory opens an Upserter authenticated with accessToken.
type ClientFactory func(ctx context.Context, accessToken string) (Upserter, error)
