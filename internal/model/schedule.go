package model

import (
	"encoding/json"
	"strings"
)

// ScheduleMode is the closed set of ways an event can be scheduled.
type ScheduleMode int

const (
	// ScheduleFixed is a single start/end pair, possibly with materialized rows.
	ScheduleFixed ScheduleMode = iota
	// ScheduleRange is one multi-day span without discrete slots.
	ScheduleRange
	// ScheduleRecurring is a recurrence backed by occurrence rows.
	ScheduleRecurring
	// ScheduleSeries is a hand-built list of occurrences. An empty series
	// has no instances at all.
	ScheduleSeries
)

// ParseScheduleMode maps a stored schedule tag to a ScheduleMode.
// Unknown or empty tags are treated as fixed.
func ParseScheduleMode(s string) ScheduleMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "range", "period":
		return ScheduleRange
	case "recurring", "recurrence":
		return ScheduleRecurring
	case "series", "occurrences", "custom":
		return ScheduleSeries
	default:
		return ScheduleFixed
	}
}

func (m ScheduleMode) String() string {
	switch m {
	case ScheduleRange:
		return "range"
	case ScheduleRecurring:
		return "recurring"
	case ScheduleSeries:
		return "series"
	default:
		return "fixed"
	}
}

// Schedule is the interpreted part of an event's schedule payload.
type Schedule struct {
	// SeriesEditor is true when the organizer used the explicit occurrence editor.
	SeriesEditor bool
	// Entries counts the usable items listed by that editor.
	Entries int
}

// SuppressesFallback reports whether a fallback instance would be misleading:
// the organizer built an explicit series but left it empty.
func (s Schedule) SuppressesFallback() bool {
	return s.SeriesEditor && s.Entries == 0
}

type schedulePayload struct {
	Mode        string            `json:"mode"`
	Type        string            `json:"type"`
	Occurrences []json.RawMessage `json:"occurrences"`
	Items       []json.RawMessage `json:"items"`
}

// ParseSchedulePayload decodes the opaque schedule blob. Malformed payloads
// yield an empty Schedule.
func ParseSchedulePayload(raw []byte) Schedule {
	if len(raw) == 0 {
		return Schedule{}
	}
	var p schedulePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Schedule{}
	}

	mode := strings.ToLower(strings.TrimSpace(p.Mode))
	if mode == "" {
		mode = strings.ToLower(strings.TrimSpace(p.Type))
	}

	var s Schedule
	s.SeriesEditor = ParseScheduleMode(mode) == ScheduleSeries
	for _, list := range [][]json.RawMessage{p.Occurrences, p.Items} {
		for _, item := range list {
			if usableEntry(item) {
				s.Entries++
			}
		}
	}
	return s
}

func usableEntry(item json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(item))
	switch trimmed {
	case "", "null", "{}", "[]", `""`:
		return false
	}
	return true
}
