package gcalendar

import "time"

// EventPayload is the body of an upsert. ID is the caller's natural key.
type EventPayload struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       EventTime
	End         EventTime
	ColorID     string // "1".."11", empty for the calendar default
	SourceTitle string
	SourceURL   string
}

// EventTime is either an all-day Date (YYYY-MM-DD) or a DateTime with an
// IANA zone name.
type EventTime struct {
	Date     string
	DateTime time.Time
	TimeZone string
}

// Event is a simplified representation of a saved Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Status   string
}
