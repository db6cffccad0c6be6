package postgre

import (
	"reflect"
	"testing"
	"time"

	"venue-calendar/internal/model"
)

// fakeRow fills the leading scan targets from values; nil entries are skipped.
type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	for i, v := range r.values {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func TestScanEvent_ScheduleMode(t *testing.T) {
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	tests := []struct {
		name         string
		mode         string
		schedule     string
		wantMode     model.ScheduleMode
		wantSeries   bool
		wantSuppress bool
	}{
		{name: "Series column with empty list", mode: "series", schedule: `{"occurrences":[]}`, wantMode: model.ScheduleSeries, wantSeries: true, wantSuppress: true},
		{name: "Series column with entries", mode: "series", schedule: `{"items":[{"start":"2026-04-01 18:00"}]}`, wantMode: model.ScheduleSeries, wantSeries: true},
		{name: "Recurring column", mode: "recurring", schedule: `{"occurrences":[]}`, wantMode: model.ScheduleRecurring},
		{name: "Fixed column with series payload", mode: "fixed", schedule: `{"mode":"series"}`, wantMode: model.ScheduleFixed, wantSeries: true, wantSuppress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := fakeRow{values: []any{int64(5), "Open studio", "", tt.mode, tt.schedule, &start, &end}}
			ev, err := scanEvent(row)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", ev.Mode, tt.wantMode)
			}
			if ev.Schedule.SeriesEditor != tt.wantSeries {
				t.Errorf("SeriesEditor = %v, want %v", ev.Schedule.SeriesEditor, tt.wantSeries)
			}
			if ev.SuppressesFallback() != tt.wantSuppress {
				t.Errorf("SuppressesFallback() = %v, want %v", ev.SuppressesFallback(), tt.wantSuppress)
			}
			if !ev.Start.Equal(start) || !ev.End.Equal(end) {
				t.Errorf("times not scanned: %v - %v", ev.Start, ev.End)
			}
		})
	}
}
