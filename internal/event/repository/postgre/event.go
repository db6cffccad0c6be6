package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	repo "venue-calendar/internal/event/repository"
	"venue-calendar/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	query, args := r.buildListEventsQuery(opt)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: query: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListEvents"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToScan, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var (
		ev             model.Event
		mode, schedule string
		start, end     *time.Time
		locationID     *int64
		loc            model.Location
	)
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Description,
		&mode, &schedule,
		&start, &end, &ev.RegistrationDeadline,
		&ev.AgeMin, &ev.AgeMax, &ev.Price,
		&locationID, &loc.Name, &loc.Address, &loc.Description, &loc.MapURL,
		&ev.CoverImageURL, &ev.Category, &ev.Permalink, &ev.Color,
	)
	if err != nil {
		return model.Event{}, err
	}

	ev.Mode = model.ParseScheduleMode(mode)
	ev.Schedule = model.ParseSchedulePayload([]byte(schedule))
	if ev.Mode == model.ScheduleSeries {
		ev.Schedule.SeriesEditor = true
	}
	if start != nil {
		ev.Start = *start
	}
	if end != nil {
		ev.End = *end
	}
	if locationID != nil {
		ev.Location = &loc
	}
	return ev, nil
}

func (r *implRepository) ListOccurrenceRows(ctx context.Context, eventID int64) ([]model.OccurrenceRow, error) {
	rows, err := r.db.Query(ctx, selectOccurrenceRows, eventID)
	if err != nil {
		r.l.Errorf(ctx, "%s: query: %v", r.dsn("ListOccurrenceRows"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var result []model.OccurrenceRow
	for rows.Next() {
		var (
			o    model.OccurrenceRow
			meta string
		)
		if err := rows.Scan(&o.ID, &o.EventID, &o.Start, &o.End, &o.Status, &o.Label, &o.LabelPrefix, &meta); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListOccurrenceRows"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToScan, err)
		}
		if meta != "" {
			o.Meta = []byte(meta)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return result, nil
}

func (r *implRepository) ListClosures(ctx context.Context, opt repo.ListClosuresOptions) ([]model.Closure, error) {
	query, args := r.buildListClosuresQuery(opt)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: query: %v", r.dsn("ListClosures"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var closures []model.Closure
	for rows.Next() {
		var c model.Closure
		if err := rows.Scan(&c.ID, &c.StartDate, &c.ClosureDate, &c.EndDate, &c.Description, &c.CoverImageURL); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListClosures"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToScan, err)
		}
		closures = append(closures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return closures, nil
}
