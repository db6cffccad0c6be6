package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "venue-calendar/internal/event/repository"
)

const (
	defaultEventStatus = "published"
	defaultEventOrder  = "e.start_at ASC NULLS LAST, e.id ASC"
)

// allowedEventOrders whitelists ORDER BY clauses accepted from callers.
var allowedEventOrders = map[string]string{
	"start_asc":  defaultEventOrder,
	"start_desc": "e.start_at DESC NULLS LAST, e.id DESC",
	"id_asc":     "e.id ASC",
}

const selectEvents = `SELECT e.id, e.title, COALESCE(e.description, ''),
	COALESCE(e.schedule_mode, ''), COALESCE(e.schedule_payload::text, ''),
	e.start_at, e.end_at, e.registration_deadline,
	e.age_min, e.age_max, e.price::float8,
	l.id, COALESCE(l.name, ''), COALESCE(l.address, ''), COALESCE(l.description, ''), COALESCE(l.map_url, ''),
	COALESCE(e.cover_image_url, ''), COALESCE(e.category, ''), COALESCE(e.permalink, ''), COALESCE(e.color, '')
FROM events e
LEFT JOIN locations l ON l.id = e.location_id`

// buildListEventsQuery builds the full query + args for ListEvents.
func (r *implRepository) buildListEventsQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	status := opt.Status
	if status == "" {
		status = defaultEventStatus
	}
	parts = append(parts, selectEvents, fmt.Sprintf("WHERE e.status = $%d", idx))
	args = append(args, status)
	idx++

	orderBy, ok := allowedEventOrders[opt.OrderBy]
	if !ok {
		orderBy = defaultEventOrder
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, "\n"), args
}

const selectClosures = `SELECT id,
	COALESCE(to_char(start_date, 'YYYY-MM-DD'), ''),
	COALESCE(to_char(closure_date, 'YYYY-MM-DD'), ''),
	COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''),
	COALESCE(description, ''), COALESCE(cover_image_url, '')
FROM closures`

// buildListClosuresQuery builds the overlap filter for ListClosures.
// A closure spans COALESCE(start_date, closure_date) through
// COALESCE(end_date, start_date, closure_date).
func (r *implRepository) buildListClosuresQuery(opt repo.ListClosuresOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("COALESCE(start_date, closure_date) <= $%d", idx))
		args = append(args, dateOnly(opt.To))
		idx++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("COALESCE(end_date, start_date, closure_date) >= $%d", idx))
		args = append(args, dateOnly(opt.From))
	}

	query := selectClosures
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	return query + "\nORDER BY COALESCE(start_date, closure_date) ASC, id ASC", args
}

const selectOccurrenceRows = `SELECT id, event_id, COALESCE(start_at, ''), COALESCE(end_at, ''),
	COALESCE(status, ''), COALESCE(label, ''), COALESCE(label_prefix, ''), COALESCE(meta::text, '')
FROM event_occurrences
WHERE event_id = $1
ORDER BY id ASC`

func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
