package occurrence

import (
	"time"

	"venue-calendar/internal/model"
)

const (
	// ClosureTitle is the display title of every closure entry.
	ClosureTitle = "Venue closed"
	// ClosureColor is the accent color forced on closure entries.
	ClosureColor = "#d50000"
	// ClosureCategory tags closure entries in CATEGORIES.
	ClosureCategory = "Closure"
)

// ExpandClosures maps closures that intersect [since, until] to all-day
// entries. Each entry carries a synthetic event with ID -|closure ID| so it
// never collides with a real event. Zero since/until leave that side open.
func (r *Resolver) ExpandClosures(closures []model.Closure, since, until time.Time) []model.Entry {
	entries := make([]model.Entry, 0, len(closures))
	for _, c := range closures {
		entry, ok := r.expandClosure(c)
		if !ok {
			continue
		}
		first := entry.Occurrence.Start
		last := r.dates.EndOfDay(entry.Occurrence.End.AddDate(0, 0, -1))
		if !until.IsZero() && first.After(until) {
			continue
		}
		if !since.IsZero() && last.Before(since) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func (r *Resolver) expandClosure(c model.Closure) (model.Entry, bool) {
	raw := firstNonEmpty(c.StartDate, c.ClosureDate)
	startDate, err := r.dates.ParseDate(raw)
	if err != nil {
		return model.Entry{}, false
	}
	endDate, err := r.dates.ParseDate(c.EndDate)
	if err != nil || endDate.Before(startDate) {
		endDate = startDate
	}

	return model.Entry{
		Event: model.Event{
			ID:            -abs(c.ID),
			Title:         ClosureTitle,
			Description:   c.Description,
			CoverImageURL: c.CoverImageURL,
			Category:      ClosureCategory,
			Color:         ClosureColor,
			Start:         startDate,
			End:           endDate,
		},
		Occurrence: model.Occurrence{
			EventID: -abs(c.ID),
			Start:   startDate,
			End:     r.dates.NextDay(endDate),
			Status:  model.StatusCancelled,
			Source:  model.SourceClosure,
			Label:   r.closureLabel(startDate, endDate, c.Description),
			AllDay:  true,
		},
	}, true
}

func (r *Resolver) closureLabel(start, end time.Time, description string) string {
	description = firstNonEmpty(description)
	if start.Equal(end) {
		if description != "" {
			return description
		}
		return r.dates.FormatDate(start)
	}
	label := r.dates.FormatDateRange(start, end)
	if description != "" {
		label += " — " + description
	}
	return label
}

func abs(id int64) int64 {
	if id < 0 {
		return -id
	}
	return id
}
