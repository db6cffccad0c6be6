package occurrence

import (
	"context"
	"sort"

	"venue-calendar/internal/model"
)

// DefaultFeedLimit caps the instances resolved per fixed, recurring or series event.
const DefaultFeedLimit = 180

// Collect builds the merged, ordered entry list of a feed window: one entry
// per range event, resolved upcoming occurrences for fixed, recurring and
// series events, and the closures of the window.
func (r *Resolver) Collect(ctx context.Context, fc model.FeedContext, perEvent int) []model.Entry {
	if perEvent < 1 {
		perEvent = DefaultFeedLimit
	}

	var entries []model.Entry
	for _, ev := range fc.Events {
		switch ev.Mode {
		case model.ScheduleRange:
			if occ, ok := r.rangeOccurrence(ev, fc); ok {
				entries = append(entries, model.Entry{Event: ev, Occurrence: occ})
			}
		case model.ScheduleFixed, model.ScheduleRecurring, model.ScheduleSeries:
			opt := Options{
				Max:   perEvent,
				Since: fc.Since,
				Until: fc.Until,
				Now:   fc.Now,
			}
			for _, occ := range r.Resolve(ctx, ev, opt) {
				entries = append(entries, model.Entry{Event: ev, Occurrence: occ})
			}
		}
	}

	entries = append(entries, r.ExpandClosures(fc.Closures, fc.Since, fc.Until)...)
	SortEntries(entries)
	return entries
}

// CollectHistory is the full-history counterpart of Collect. Fixed,
// recurring and series events contribute every occurrence from
// BuildAllOccurrences, past and cancelled included. Range events keep their
// single span whatever the window. Closures stay limited to the window.
func (r *Resolver) CollectHistory(ctx context.Context, fc model.FeedContext) []model.Entry {
	open := model.FeedContext{Now: fc.Now}

	var entries []model.Entry
	for _, ev := range fc.Events {
		switch ev.Mode {
		case model.ScheduleRange:
			if occ, ok := r.rangeOccurrence(ev, open); ok {
				entries = append(entries, model.Entry{Event: ev, Occurrence: occ})
			}
		default:
			for _, occ := range r.BuildAllOccurrences(ctx, ev, fc.Now) {
				entries = append(entries, model.Entry{Event: ev, Occurrence: occ})
			}
		}
	}

	entries = append(entries, r.ExpandClosures(fc.Closures, fc.Since, fc.Until)...)
	SortEntries(entries)
	return entries
}

// SortEntries orders entries by occurrence start, keeping the relative order
// of equal starts.
func SortEntries(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Occurrence.Start.Before(entries[j].Occurrence.Start)
	})
}

// rangeOccurrence spans the event's own start and end. Spans that begin at
// midnight and end at midnight or day end are all-day with an inclusive end
// date.
func (r *Resolver) rangeOccurrence(ev model.Event, fc model.FeedContext) (model.Occurrence, bool) {
	if !ev.HasStart() {
		return model.Occurrence{}, false
	}
	start := ev.Start
	end := ev.End

	allDay := r.dates.IsMidnight(start) &&
		(end.IsZero() || r.dates.IsMidnight(end) || r.dates.IsDayEnd(end))

	var (
		lastDay = end
		occEnd  = end
	)
	if allDay {
		if end.Before(start) {
			lastDay = start
		}
		occEnd = r.dates.NextDay(lastDay)
	} else if !end.After(start) {
		occEnd = start.Add(DefaultDuration)
		lastDay = start
	}

	if !fc.Until.IsZero() && start.After(fc.Until) {
		return model.Occurrence{}, false
	}
	if !fc.Since.IsZero() && !occEnd.After(fc.Since) {
		return model.Occurrence{}, false
	}

	now := fc.Now
	return model.Occurrence{
		EventID: ev.ID,
		Start:   start,
		End:     occEnd,
		Status:  model.StatusActive,
		Source:  model.SourceRange,
		Label:   r.dates.FormatDateRange(start, lastDay),
		AllDay:  allDay,
		IsPast:  !now.IsZero() && occEnd.Before(now),
	}, true
}
