package occurrence

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"venue-calendar/internal/model"
)

// Resolve returns the occurrences of one event, ordered by start and
// filtered by opt. Bad rows are skipped; it never fails.
func (r *Resolver) Resolve(ctx context.Context, event model.Event, opt Options) []model.Occurrence {
	allowed := allowedStatuses(opt.Statuses, opt.IncludeCancelled)
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	rows := r.readRows(ctx, event.ID)
	occurrences := make([]model.Occurrence, 0, len(rows))
	for _, row := range rows {
		occ, ok := r.fromRow(ctx, row)
		if !ok {
			continue
		}
		if _, ok := allowed[occ.Status]; !ok {
			continue
		}
		occurrences = append(occurrences, occ)
	}

	if len(occurrences) == 0 && !event.SuppressesFallback() {
		if occ, ok := fallback(event); ok {
			if _, ok := allowed[occ.Status]; ok {
				occurrences = append(occurrences, occ)
			}
		}
	}

	SortByStart(occurrences)
	return window(occurrences, opt, now)
}

// BuildAllOccurrences returns every occurrence of the event: past,
// cancelled and unbounded in count. IsPast is judged against now, or
// time.Now when now is zero.
func (r *Resolver) BuildAllOccurrences(ctx context.Context, event model.Event, now time.Time) []model.Occurrence {
	opt := allOptions()
	opt.Now = now
	return r.Resolve(ctx, event, opt)
}

// SortByStart orders occurrences by start instant, keeping the relative
// order of equal starts.
func SortByStart(occurrences []model.Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Start.Before(occurrences[j].Start)
	})
}

func (r *Resolver) readRows(ctx context.Context, eventID int64) []model.OccurrenceRow {
	if r.rows == nil {
		return nil
	}
	rows, err := r.rows.ListOccurrenceRows(ctx, eventID)
	if err != nil {
		r.l.Warnf(ctx, "occurrence.Resolve: list rows for event %d: %v", eventID, err)
		return nil
	}
	return rows
}

func (r *Resolver) fromRow(ctx context.Context, row model.OccurrenceRow) (model.Occurrence, bool) {
	meta := decodeMeta(row.Meta)
	if meta == nil && len(row.Meta) > 0 {
		r.l.Debugf(ctx, "occurrence.fromRow: ignoring malformed meta on row %d", row.ID)
	}

	status := rowStatus(row.Status, meta)
	if status == model.StatusDeleted {
		return model.Occurrence{}, false
	}

	start, err := r.dates.ParseLocal(row.Start)
	if err != nil {
		r.l.Debugf(ctx, "occurrence.fromRow: dropping row %d: %v", row.ID, err)
		return model.Occurrence{}, false
	}
	end, err := r.dates.ParseLocal(row.End)
	if err != nil || !end.After(start) {
		end = start.Add(DefaultDuration)
	}

	return model.Occurrence{
		EventID:     row.EventID,
		Start:       start,
		End:         end,
		Status:      status,
		Source:      model.SourceManual,
		Label:       firstNonEmpty(row.Label, metaString(meta, "label")),
		LabelPrefix: firstNonEmpty(row.LabelPrefix, metaString(meta, "label_prefix")),
		Meta:        meta,
	}, true
}

func fallback(event model.Event) (model.Occurrence, bool) {
	if !event.HasStart() {
		return model.Occurrence{}, false
	}
	end := event.End
	if !end.After(event.Start) {
		end = event.Start.Add(DefaultDuration)
	}
	return model.Occurrence{
		EventID: event.ID,
		Start:   event.Start,
		End:     end,
		Status:  model.StatusActive,
		Source:  model.SourceFallback,
	}, true
}

func window(occurrences []model.Occurrence, opt Options, now time.Time) []model.Occurrence {
	limit := opt.Max
	if limit < 1 {
		limit = 1
	}

	out := occurrences[:0]
	for _, occ := range occurrences {
		if !opt.Since.IsZero() && occ.Start.Before(opt.Since) {
			continue
		}
		if !opt.Until.IsZero() && occ.Start.After(opt.Until) {
			continue
		}
		occ.IsPast = occ.Start.Before(now)
		if occ.IsPast && !opt.IncludePast {
			continue
		}
		out = append(out, occ)
		if len(out) == limit {
			break
		}
	}
	return out
}

// rowStatus prefers the explicit column, then a legacy meta.status term.
// Rows with neither are active.
func rowStatus(raw string, meta map[string]any) model.Status {
	if strings.TrimSpace(raw) != "" {
		return model.LegacyStatus(raw)
	}
	if s := metaString(meta, "status"); s != "" {
		return model.LegacyStatus(s)
	}
	return model.StatusActive
}

func decodeMeta(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}
	return meta
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	s, _ := meta[key].(string)
	return strings.TrimSpace(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
