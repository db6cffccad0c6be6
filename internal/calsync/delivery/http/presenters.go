package http

import (
	"time"

	"venue-calendar/internal/calsync"
)

// --- Request DTOs ---

type syncReq struct {
	CalendarID     string `json:"calendar_id"`
	AccessToken    string `json:"access_token"`
	MaxEvents      int    `json:"max_events" binding:"omitempty,min=1,max=2000"`
	DryRun         bool   `json:"dry_run"`
	FullHistory    bool   `json:"full_history"`
	TimeoutSeconds int    `json:"timeout_seconds" binding:"omitempty,min=1,max=120"`
}

func (r syncReq) toInput() calsync.SyncInput {
	return calsync.SyncInput{
		CalendarID:  r.CalendarID,
		AccessToken: r.AccessToken,
		MaxEvents:   r.MaxEvents,
		DryRun:      r.DryRun,
		FullHistory: r.FullHistory,
		Timeout:     time.Duration(r.TimeoutSeconds) * time.Second,
	}
}

// --- Response DTOs ---

type syncResp struct {
	Synced  int      `json:"synced"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

func newSyncResp(o calsync.SyncOutput) syncResp {
	errs := o.Errors
	if errs == nil {
		errs = []string{}
	}
	return syncResp{
		Synced:  o.Synced,
		Skipped: o.Skipped,
		Errors:  errs,
	}
}
