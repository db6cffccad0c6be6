package repository

import (
	"context"

	"venue-calendar/internal/model"
)

// Repository is the read-only data-access collaborator for events and closures.
type Repository interface {
	EventRepository
	OccurrenceRepository
	ClosureRepository
}

// EventRepository lists events with their location display data.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}

// OccurrenceRepository reads the materialized occurrence rows of an event.
type OccurrenceRepository interface {
	ListOccurrenceRows(ctx context.Context, eventID int64) ([]model.OccurrenceRow, error)
}

// ClosureRepository lists venue closures.
type ClosureRepository interface {
	ListClosures(ctx context.Context, opt ListClosuresOptions) ([]model.Closure, error)
}
