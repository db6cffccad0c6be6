package repository

import "time"

// ListEventsOptions holds filter and ordering parameters for listing events.
type ListEventsOptions struct {
	Status  string // defaults to "published"
	Limit   int
	OrderBy string // defaults to start ascending
}

// ListClosuresOptions selects closures whose date range overlaps [From, To].
// A zero bound leaves that side open.
type ListClosuresOptions struct {
	From time.Time
	To   time.Time
}
