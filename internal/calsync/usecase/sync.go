package usecase

import (
	"context"
	"fmt"
	"strings"

	"venue-calendar/internal/calsync"
	"venue-calendar/internal/model"
)

// Sync builds the feed's merged entries and upserts them one by one.
func (uc *implUseCase) Sync(ctx context.Context, input calsync.SyncInput) (calsync.SyncOutput, error) {
	input = uc.withDefaults(input)
	if strings.TrimSpace(input.CalendarID) == "" || strings.TrimSpace(input.AccessToken) == "" {
		return calsync.SyncOutput{}, calsync.ErrInvalidCredentials
	}

	fc, err := uc.feed.BuildContext(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.Sync: build context: %v", err)
		return calsync.SyncOutput{}, fmt.Errorf("build feed context: %w", err)
	}

	var entries []model.Entry
	if input.FullHistory {
		entries = uc.feed.HistoryEntries(ctx, fc)
	} else {
		entries = uc.feed.Entries(ctx, fc)
	}
	if len(entries) > input.MaxEvents {
		entries = entries[:input.MaxEvents]
	}

	var client calsync.Upserter
	if !input.DryRun {
		client, err = uc.clients(ctx, input.AccessToken)
		if err != nil {
			uc.l.Errorf(ctx, "calsync.usecase.Sync: open client: %v", err)
			return calsync.SyncOutput{}, fmt.Errorf("%w: %v", calsync.ErrInvalidCredentials, err)
		}
	}

	out := calsync.SyncOutput{Errors: []string{}}
	for _, e := range entries {
		payload, err := uc.payload(e, fc)
		if err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, fmt.Sprintf("event %d: %v", e.Event.ID, err))
			continue
		}
		if input.DryRun {
			out.Synced++
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, input.Timeout)
		_, err = client.UpsertEvent(callCtx, input.CalendarID, payload)
		cancel()
		if err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v: %v", payload.ID, calsync.ErrRemoteCall, err))
			continue
		}
		out.Synced++
	}

	uc.l.Infof(ctx, "calsync.usecase.Sync: calendar=%s dry_run=%t full_history=%t synced=%d skipped=%d",
		input.CalendarID, input.DryRun, input.FullHistory, out.Synced, out.Skipped)
	return out, nil
}

func (uc *implUseCase) withDefaults(input calsync.SyncInput) calsync.SyncInput {
	if strings.TrimSpace(input.CalendarID) == "" {
		input.CalendarID = uc.cfg.CalendarID
	}
	if strings.TrimSpace(input.AccessToken) == "" {
		input.AccessToken = uc.cfg.AccessToken
	}
	if input.MaxEvents <= 0 {
		input.MaxEvents = uc.cfg.MaxEvents
	}
	if input.Timeout <= 0 {
		input.Timeout = uc.cfg.Timeout
	}
	return input
}
