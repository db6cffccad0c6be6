// Package occurrence turns stored events and closures into concrete,
// ordered time instances.
package occurrence

import (
	"context"

	"venue-calendar/internal/model"
	"venue-calendar/pkg/datemath"
	pkgLog "venue-calendar/pkg/log"
)

// RowReader loads the materialized occurrence rows of one event.
type RowReader interface {
	ListOccurrenceRows(ctx context.Context, eventID int64) ([]model.OccurrenceRow, error)
}

// Resolver builds occurrences for events and closures. It holds no
// per-request state and is safe for concurrent use.
type Resolver struct {
	l     pkgLog.Logger
	rows  RowReader
	dates *datemath.Parser
}

// New creates a Resolver. A nil RowReader means events have no stored rows.
func New(l pkgLog.Logger, rows RowReader, dates *datemath.Parser) *Resolver {
	if dates == nil {
		dates = datemath.NewParserIn(nil)
	}
	return &Resolver{
		l:     l,
		rows:  rows,
		dates: dates,
	}
}
