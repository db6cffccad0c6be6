package model_test

import (
	"testing"

	"venue-calendar/internal/model"
)

func TestLegacyStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Status
	}{
		{"confirmed", model.StatusActive},
		{"Active", model.StatusActive},
		{"cancelled", model.StatusCancelled},
		{"annule", model.StatusCancelled},
		{"postponed", model.StatusPostponed},
		{" reporte ", model.StatusPostponed},
		{"deleted", model.StatusDeleted},
		{"maybe", model.StatusToConfirm},
		{"", model.StatusToConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := model.LegacyStatus(tt.raw); got != tt.want {
				t.Errorf("LegacyStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSchedulePayload(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantSeries   bool
		wantEntries  int
		wantSuppress bool
	}{
		{name: "No payload"},
		{name: "Malformed JSON", raw: `{"mode":`},
		{name: "Series without entries", raw: `{"mode":"series","occurrences":[]}`, wantSeries: true, wantSuppress: true},
		{name: "Series with empty items", raw: `{"type":"series","items":[{}, null]}`, wantSeries: true, wantSuppress: true},
		{name: "Series with entries", raw: `{"mode":"series","occurrences":[{"start":"2026-03-01 10:00"}]}`, wantSeries: true, wantEntries: 1},
		{name: "Fixed payload", raw: `{"mode":"fixed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseSchedulePayload([]byte(tt.raw))
			if got.SeriesEditor != tt.wantSeries {
				t.Errorf("SeriesEditor = %v, want %v", got.SeriesEditor, tt.wantSeries)
			}
			if got.Entries != tt.wantEntries {
				t.Errorf("Entries = %d, want %d", got.Entries, tt.wantEntries)
			}
			if got.SuppressesFallback() != tt.wantSuppress {
				t.Errorf("SuppressesFallback() = %v, want %v", got.SuppressesFallback(), tt.wantSuppress)
			}
		})
	}
}

func TestParseScheduleMode(t *testing.T) {
	cases := map[string]model.ScheduleMode{
		"range":     model.ScheduleRange,
		"series":    model.ScheduleSeries,
		"custom":    model.ScheduleSeries,
		"Recurring": model.ScheduleRecurring,
		"fixed":     model.ScheduleFixed,
		"":          model.ScheduleFixed,
	}
	for raw, want := range cases {
		if got := model.ParseScheduleMode(raw); got != want {
			t.Errorf("ParseScheduleMode(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestOccurrenceSlotLabel(t *testing.T) {
	o := model.Occurrence{LabelPrefix: "Session 2", Label: "Beginners"}
	if got := o.SlotLabel(); got != "Session 2 Beginners" {
		t.Errorf("SlotLabel() = %q", got)
	}
	o.LabelPrefix = ""
	if got := o.SlotLabel(); got != "Beginners" {
		t.Errorf("SlotLabel() = %q", got)
	}
}

func TestEventSuppressesFallback(t *testing.T) {
	tests := []struct {
		name  string
		event model.Event
		want  bool
	}{
		{
			name:  "Series column with empty occurrences",
			event: model.Event{Mode: model.ParseScheduleMode("series"), Schedule: model.ParseSchedulePayload([]byte(`{"occurrences":[]}`))},
			want:  true,
		},
		{
			name:  "Series column without payload",
			event: model.Event{Mode: model.ScheduleSeries},
			want:  true,
		},
		{
			name:  "Series column with entries",
			event: model.Event{Mode: model.ScheduleSeries, Schedule: model.ParseSchedulePayload([]byte(`{"items":[{"start":"2026-03-01 10:00"}]}`))},
		},
		{
			name:  "Series payload on fixed column",
			event: model.Event{Schedule: model.ParseSchedulePayload([]byte(`{"type":"series","items":[]}`))},
			want:  true,
		},
		{
			name:  "Recurring column with empty occurrences",
			event: model.Event{Mode: model.ScheduleRecurring, Schedule: model.ParseSchedulePayload([]byte(`{"occurrences":[]}`))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.SuppressesFallback(); got != tt.want {
				t.Errorf("SuppressesFallback() = %v, want %v", got, tt.want)
			}
		})
	}
}
