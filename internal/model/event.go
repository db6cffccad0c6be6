package model

import "time"

// Event is a scheduled activity as read from the data-access layer.
// Times are zero when the stored value was missing or unparseable.
type Event struct {
	ID                   int64
	Title                string
	Description          string // HTML body
	Mode                 ScheduleMode
	Schedule             Schedule
	Start                time.Time
	End                  time.Time
	RegistrationDeadline *time.Time
	AgeMin               *int
	AgeMax               *int
	Price                *float64
	Location             *Location
	CoverImageURL        string
	Category             string // event type tag
	Permalink            string
	Color                string // explicit #rrggbb override
}

// HasStart reports whether the event carries a usable start instant.
func (e Event) HasStart() bool {
	return !e.Start.IsZero()
}

// SuppressesFallback reports whether the event is an explicit series, tagged
// by its schedule column or its payload, that lists no entries.
func (e Event) SuppressesFallback() bool {
	if e.Mode == ScheduleSeries {
		return e.Schedule.Entries == 0
	}
	return e.Schedule.SuppressesFallback()
}

// Location is the display data of a venue.
type Location struct {
	Name        string
	Address     string
	Description string
	MapURL      string
}

// Closure is a venue-closed date interval. Dates are stored as YYYY-MM-DD;
// ClosureDate is the legacy single-date column used when StartDate is blank.
type Closure struct {
	ID            int64
	StartDate     string
	ClosureDate   string
	EndDate       string
	Description   string
	CoverImageURL string
}
