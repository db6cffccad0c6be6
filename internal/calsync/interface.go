package calsync

import "context"

// UseCase pushes the feed's occurrences into a remote calendar.
type UseCase interface {
	// Sync upserts every feed entry into the remote calendar. Per-entry
	// failures are reported in the output and never abort the batch.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}
