package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	eventRepo "venue-calendar/internal/event/repository"
	"venue-calendar/internal/feed"
	"venue-calendar/internal/feed/usecase"
	"venue-calendar/internal/model"
	settingsRepo "venue-calendar/internal/settings/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockEventRepo struct {
	events      []model.Event
	rows        map[int64][]model.OccurrenceRow
	closures    []model.Closure
	listErr     error
	closureErr  error
	lastEvents  eventRepo.ListEventsOptions
	lastClosure eventRepo.ListClosuresOptions
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]model.Event, error) {
	m.lastEvents = opt
	return m.events, m.listErr
}

func (m *mockEventRepo) ListOccurrenceRows(ctx context.Context, eventID int64) ([]model.OccurrenceRow, error) {
	return m.rows[eventID], nil
}

func (m *mockEventRepo) ListClosures(ctx context.Context, opt eventRepo.ListClosuresOptions) ([]model.Closure, error) {
	m.lastClosure = opt
	return m.closures, m.closureErr
}

type mockSettings struct {
	values map[string]string
	getErr error
}

func (m *mockSettings) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", settingsRepo.ErrNotFound
	}
	return v, nil
}

func (m *mockSettings) Set(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// maxLineOctets is the RFC 5545 physical line limit, excluding CRLF.
const maxLineOctets = 75

func unfold(s string) string {
	return strings.ReplaceAll(s, "\r\n ", "")
}

func testConfig() feed.Config {
	return feed.Config{
		Enabled:       true,
		CalendarName:  "Venue agenda",
		Timezone:      time.UTC,
		TimezoneName:  "UTC",
		SiteURL:       "https://venue.example",
		QueryParam:    "calendar_feed",
		TokenParam:    "token",
		HorizonMonths: 12,
		EventLimit:    240,
		ResolverLimit: 180,
		TypeColors:    map[string]string{"workshop": "#33b679"},
	}
}

func newUseCase(events eventRepo.Repository, settings settingsRepo.Repository, cfg feed.Config) feed.UseCase {
	return usecase.New(&mockLogger{}, events, settings, cfg, usecase.WithClock(func() time.Time { return fixedNow }))
}

func TestBuildContext(t *testing.T) {
	t.Run("Missing events source", func(t *testing.T) {
		uc := newUseCase(nil, &mockSettings{}, testConfig())
		if _, err := uc.BuildContext(context.Background()); !errors.Is(err, feed.ErrMissingCollaborator) {
			t.Fatalf("expected ErrMissingCollaborator, got %v", err)
		}

		body := string(uc.Feed(context.Background()))
		if !strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(body, "END:VCALENDAR\r\n") {
			t.Errorf("expected a minimal calendar, got %q", body)
		}
		if strings.Contains(body, "BEGIN:VEVENT") {
			t.Errorf("degraded feed must not contain events")
		}
	})

	t.Run("Window and limits", func(t *testing.T) {
		repo := &mockEventRepo{closureErr: errors.New("closures table missing")}
		uc := newUseCase(repo, &mockSettings{}, testConfig())

		fc, err := uc.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fc.Since.Equal(fixedNow.AddDate(0, 0, -1)) || !fc.Until.Equal(fixedNow.AddDate(1, 0, 0)) {
			t.Errorf("unexpected window %v - %v", fc.Since, fc.Until)
		}
		if repo.lastEvents.Limit != 240 {
			t.Errorf("expected event limit 240, got %d", repo.lastEvents.Limit)
		}
		if !repo.lastClosure.From.Equal(fc.Since) || !repo.lastClosure.To.Equal(fc.Until) {
			t.Errorf("closures not fetched for the feed window")
		}
		if fc.CalendarName != "Venue agenda" || fc.TimezoneName != "UTC" {
			t.Errorf("calendar metadata not carried: %+v", fc)
		}
	})

	t.Run("Short horizon is clamped", func(t *testing.T) {
		cfg := testConfig()
		cfg.HorizonMonths = 3
		uc := newUseCase(&mockEventRepo{}, &mockSettings{}, cfg)

		fc, err := uc.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := fc.Since.AddDate(0, 9, 0); !fc.Until.Equal(want) {
			t.Errorf("until = %v, want %v", fc.Until, want)
		}
	})

	t.Run("Event listing failure", func(t *testing.T) {
		uc := newUseCase(&mockEventRepo{listErr: errors.New("db down")}, &mockSettings{}, testConfig())
		if _, err := uc.BuildContext(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRenderICS_Placeholder(t *testing.T) {
	uc := newUseCase(&mockEventRepo{}, &mockSettings{}, testConfig())

	body := uc.Feed(context.Background())
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("feed does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected exactly one placeholder event, got %d", len(events))
	}
	if p := events[0].GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "No upcoming events" {
		t.Errorf("unexpected placeholder summary: %v", p)
	}
	for _, want := range []string{"METHOD:PUBLISH", "X-WR-CALNAME:Venue agenda", "X-WR-TIMEZONE:UTC", "DTSTART;VALUE=DATE:20260301"} {
		if !bytes.Contains(body, []byte(want+"\r\n")) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func feedRepo() *mockEventRepo {
	price := 0.0
	return &mockEventRepo{
		events: []model.Event{
			{
				ID:          10,
				Title:       "Pottery, clay; fun",
				Mode:        model.ScheduleRecurring,
				Category:    "Workshop",
				Price:       &price,
				Description: "<p>" + strings.Repeat("Hands-on session with the résidence potters. ", 6) + "</p>",
				Permalink:   "https://venue.example/pottery",
				Location:    &model.Location{Name: "Studio", Address: "2 rue Neuve"},
			},
			{
				ID:            11,
				Title:         "Exhibition",
				Mode:          model.ScheduleRange,
				Start:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				End:           time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC),
				CoverImageURL: "https://venue.example/cover.jpg",
				Color:         "#ff0000",
			},
		},
		rows: map[int64][]model.OccurrenceRow{
			10: {
				{ID: 1, EventID: 10, Start: "2026-03-10 14:00", End: "2026-03-10 16:00", Label: "Beginners"},
				{ID: 2, EventID: 10, Start: "2026-03-03 14:00", End: "2026-03-03 16:00", Status: "postponed"},
				{ID: 3, EventID: 10, Start: "2026-02-01 14:00", End: "2026-02-01 16:00"},
			},
		},
		closures: []model.Closure{{ID: 4, StartDate: "2026-03-08", Description: "Inventory"}},
	}
}

func TestRenderICS_Entries(t *testing.T) {
	uc := newUseCase(feedRepo(), &mockSettings{}, testConfig())

	body := uc.Feed(context.Background())
	text := string(body)

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("feed does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	wantUIDs := []string{
		"event-11-20260302T000000Z@venue.example",
		"event-10-20260303T140000Z@venue.example",
		"closure-4-20260308T000000Z@venue.example",
		"event-10-20260310T140000Z@venue.example",
	}
	for i, ev := range events {
		if got := ev.GetProperty(ical.ComponentPropertyUniqueId).Value; got != wantUIDs[i] {
			t.Errorf("event %d UID = %q, want %q", i, got, wantUIDs[i])
		}
	}

	for _, want := range []string{
		"DTSTART;VALUE=DATE:20260302",
		"DTEND;VALUE=DATE:20260306",
		"X-MICROSOFT-CDO-ALLDAYEVENT:TRUE",
		"DTSTART:20260303T140000Z",
		"DTEND:20260303T160000Z",
		"STATUS:TENTATIVE",
		"STATUS:CONFIRMED",
		"SUMMARY:Venue closed: Inventory",
		"TRANSP:OPAQUE",
		"COLOR:#FF0000",
		"COLOR:#33B679",
		"CATEGORIES:Workshop",
		"ATTACH;FMTTYPE=image/jpeg:https://venue.example/cover.jpg",
		"URL:https://venue.example/pottery",
		"LOCATION:Studio\\, 2 rue Neuve",
		"DTSTAMP:20260301T090000Z",
	} {
		if !strings.Contains(text, want+"\r\n") {
			t.Errorf("feed missing line %q", want)
		}
	}

	if !strings.Contains(unfold(text), "SUMMARY:Pottery\\, clay\\; fun — Beginners\r\n") {
		t.Errorf("summary not composed and escaped")
	}

	for _, line := range strings.SplitAfter(text, "\r\n") {
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, "\r\n") {
			t.Fatalf("line without CRLF: %q", line)
		}
		if n := len(strings.TrimSuffix(line, "\r\n")); n > maxLineOctets {
			t.Errorf("line of %d octets: %q", n, line)
		}
	}
}

func TestRenderICS_DescriptionRoundTrip(t *testing.T) {
	repo := feedRepo()
	uc := usecase.New(&mockLogger{}, repo, &mockSettings{}, testConfig(), usecase.WithClock(func() time.Time { return fixedNow }))

	fc, err := uc.BuildContext(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := uc.Entries(context.Background(), fc)
	want := uc.Composer().Description(entries[1])
	if !strings.Contains(want, "Free") || len(want) <= maxLineOctets {
		t.Fatalf("fixture description too short to fold: %q", want)
	}

	body := uc.RenderICS(context.Background(), fc)
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("feed does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != len(entries) {
		t.Fatalf("expected %d events, got %d", len(entries), len(events))
	}
	if p := events[1].GetProperty(ical.ComponentPropertyDescription); p == nil || p.Value != want {
		t.Errorf("DESCRIPTION does not decode back to %q, got %v", want, p)
	}

	second := uc.RenderICS(context.Background(), fc)
	if !bytes.Equal(body, second) {
		t.Errorf("rendering the same context twice must be identical")
	}
}

func TestRenderICS_LineBreaks(t *testing.T) {
	start := time.Date(2026, 3, 12, 19, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{
		events: []model.Event{{
			ID:       20,
			Title:    "Late\r\nshow\rtonight",
			Start:    start,
			End:      start.Add(2 * time.Hour),
			Location: &model.Location{Name: "Hall\r\nB"},
		}},
	}
	uc := newUseCase(repo, &mockSettings{}, testConfig())

	body := uc.Feed(context.Background())
	if bytes.Contains(bytes.ReplaceAll(body, []byte("\r\n"), nil), []byte("\r")) {
		t.Fatalf("bare CR leaked into the feed: %q", body)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("feed does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}

	tests := []struct {
		prop ical.ComponentProperty
		want string
	}{
		{prop: ical.ComponentPropertySummary, want: "Late\nshow\ntonight"},
		{prop: ical.ComponentPropertyLocation, want: "Hall\nB"},
	}
	for _, tt := range tests {
		if p := events[0].GetProperty(tt.prop); p == nil || p.Value != tt.want {
			t.Errorf("%s = %v, want %q", tt.prop, p, tt.want)
		}
	}
}

func TestAuthorize(t *testing.T) {
	settings := &mockSettings{values: map[string]string{feed.TokenSettingKey: "abc123"}}

	tests := []struct {
		name     string
		enabled  bool
		settings *mockSettings
		token    string
		wantErr  error
	}{
		{name: "Disabled", enabled: false, settings: settings, token: "abc123", wantErr: feed.ErrFeedDisabled},
		{name: "No stored token", enabled: true, settings: &mockSettings{}, token: "abc123", wantErr: feed.ErrAccessDenied},
		{name: "Missing token", enabled: true, settings: settings, token: "", wantErr: feed.ErrAccessDenied},
		{name: "Wrong token", enabled: true, settings: settings, token: "abc124", wantErr: feed.ErrAccessDenied},
		{name: "Valid token", enabled: true, settings: settings, token: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Enabled = tt.enabled
			uc := newUseCase(&mockEventRepo{}, tt.settings, cfg)

			err := uc.Authorize(context.Background(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authorize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenLifecycle(t *testing.T) {
	settings := &mockSettings{}
	uc := newUseCase(&mockEventRepo{}, settings, testConfig())
	ctx := context.Background()

	if _, err := uc.FeedURL(ctx, feed.FeedURLInput{}); !errors.Is(err, feed.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	created, err := uc.FeedURL(ctx, feed.FeedURLInput{Create: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Created || len(created.Token) != 32 || usecase.SanitizeToken(created.Token) != created.Token {
		t.Errorf("unexpected generated token: %+v", created)
	}
	if created.URL != "https://venue.example/?calendar_feed=1&token="+created.Token {
		t.Errorf("unexpected URL %q", created.URL)
	}

	again, _ := uc.FeedURL(ctx, feed.FeedURLInput{Create: true})
	if again.Created || again.Token != created.Token {
		t.Errorf("existing token must be reused: %+v", again)
	}

	regenerated, err := uc.RegenerateToken(ctx)
	if err != nil || regenerated.Token == created.Token {
		t.Fatalf("regenerate failed: %v %+v", err, regenerated)
	}
	if err := uc.Authorize(ctx, created.Token); !errors.Is(err, feed.ErrAccessDenied) {
		t.Errorf("old token must be rejected after regeneration")
	}

	set, err := uc.SetToken(ctx, feed.SetTokenInput{Token: "my-Token_2026!"})
	if err != nil || set.Token != "myToken2026" {
		t.Fatalf("SetToken() = %+v, %v", set, err)
	}
	if err := uc.Authorize(ctx, "myToken2026"); err != nil {
		t.Errorf("set token must authorize: %v", err)
	}

	if _, err := uc.SetToken(ctx, feed.SetTokenInput{Token: "!!--"}); !errors.Is(err, feed.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	long, _ := uc.SetToken(ctx, feed.SetTokenInput{Token: strings.Repeat("a", 100)})
	if len(long.Token) != 64 {
		t.Errorf("token must be capped at 64 chars, got %d", len(long.Token))
	}
}
