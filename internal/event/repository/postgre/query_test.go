package postgre

import (
	"strings"
	"testing"
	"time"

	repo "venue-calendar/internal/event/repository"
)

func TestBuildListEventsQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name      string
		opt       repo.ListEventsOptions
		wantParts []string
		wantArgs  []any
	}{
		{
			name:      "Defaults",
			opt:       repo.ListEventsOptions{},
			wantParts: []string{"WHERE e.status = $1", "ORDER BY " + defaultEventOrder},
			wantArgs:  []any{"published"},
		},
		{
			name:      "Limit and order",
			opt:       repo.ListEventsOptions{Status: "draft", Limit: 240, OrderBy: "start_desc"},
			wantParts: []string{"WHERE e.status = $1", "ORDER BY e.start_at DESC", "LIMIT $2"},
			wantArgs:  []any{"draft", 240},
		},
		{
			name:      "Unknown order falls back",
			opt:       repo.ListEventsOptions{OrderBy: "title; DROP TABLE events"},
			wantParts: []string{"ORDER BY " + defaultEventOrder},
			wantArgs:  []any{"published"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := r.buildListEventsQuery(tt.opt)
			for _, part := range tt.wantParts {
				if !strings.Contains(query, part) {
					t.Errorf("query missing %q:\n%s", part, query)
				}
			}
			if strings.Contains(query, "DROP TABLE") {
				t.Errorf("caller order leaked into query")
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestBuildListClosuresQuery(t *testing.T) {
	r := &implRepository{}

	query, args := r.buildListClosuresQuery(repo.ListClosuresOptions{})
	if strings.Contains(query, "WHERE") || len(args) != 0 {
		t.Errorf("open window should not filter: %s %v", query, args)
	}

	from := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	to := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)
	query, args = r.buildListClosuresQuery(repo.ListClosuresOptions{From: from, To: to})
	if !strings.Contains(query, "COALESCE(start_date, closure_date) <= $1") ||
		!strings.Contains(query, "COALESCE(end_date, start_date, closure_date) >= $2") {
		t.Errorf("unexpected overlap filter:\n%s", query)
	}
	if len(args) != 2 || args[0] != "2027-03-01" || args[1] != "2026-02-28" {
		t.Errorf("args = %v", args)
	}
}
