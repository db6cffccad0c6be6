package model

import "time"

// Source tags where an occurrence came from. It never affects ordering.
type Source string

const (
	SourceManual   Source = "manual"
	SourceFallback Source = "fallback"
	SourceRange    Source = "range"
	SourceClosure  Source = "closure"
)

// OccurrenceRow is a materialized occurrence as stored. Start and End are
// raw timestamps; rows whose start does not parse are dropped by the resolver.
type OccurrenceRow struct {
	ID          int64
	EventID     int64
	Start       string
	End         string
	Status      string
	Label       string
	LabelPrefix string
	Meta        []byte // JSON object, optional
}

// Occurrence is one concrete time instance of an event or closure.
// End is always after Start.
type Occurrence struct {
	EventID     int64
	Start       time.Time
	End         time.Time
	Status      Status
	Source      Source
	Label       string
	LabelPrefix string
	Meta        map[string]any
	AllDay      bool
	IsPast      bool
}

// SlotLabel joins the label prefix and label.
func (o Occurrence) SlotLabel() string {
	switch {
	case o.LabelPrefix == "":
		return o.Label
	case o.Label == "":
		return o.LabelPrefix
	default:
		return o.LabelPrefix + " " + o.Label
	}
}

// Entry pairs an occurrence with the event it belongs to. Closures carry a
// synthetic event with a negative ID.
type Entry struct {
	Event      Event
	Occurrence Occurrence
}

// IsClosure reports whether the entry stands for a venue closure.
func (e Entry) IsClosure() bool {
	return e.Occurrence.Source == SourceClosure
}

// FeedContext is the per-request input shared by the feed and sync serializers.
type FeedContext struct {
	Events       []Event
	Closures     []Closure
	Since        time.Time
	Until        time.Time
	Now          time.Time
	Location     *time.Location
	TimezoneName string
	CalendarName string
	SiteURL      string
}
