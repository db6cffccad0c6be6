package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"venue-calendar/internal/feed"
	feedHTTP "venue-calendar/internal/feed/delivery/http"
	"venue-calendar/internal/middleware"
	"venue-calendar/internal/model"
	"venue-calendar/pkg/response"
)

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

const calendarBody = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

type mockUseCase struct {
	enabled  bool
	token    string
	setErr   error
	lastSet  string
	feedHits int
}

func (m *mockUseCase) BuildContext(ctx context.Context) (model.FeedContext, error) {
	return model.FeedContext{}, nil
}

func (m *mockUseCase) Entries(ctx context.Context, fc model.FeedContext) []model.Entry {
	return nil
}

func (m *mockUseCase) HistoryEntries(ctx context.Context, fc model.FeedContext) []model.Entry {
	return nil
}

func (m *mockUseCase) Enabled() bool { return m.enabled }

func (m *mockUseCase) RenderICS(ctx context.Context, fc model.FeedContext) []byte {
	return []byte(calendarBody)
}

func (m *mockUseCase) Feed(ctx context.Context) []byte {
	m.feedHits++
	return []byte(calendarBody)
}

func (m *mockUseCase) Authorize(ctx context.Context, token string) error {
	if !m.enabled {
		return feed.ErrFeedDisabled
	}
	if m.token == "" || token != m.token {
		return feed.ErrAccessDenied
	}
	return nil
}

func (m *mockUseCase) FeedURL(ctx context.Context, input feed.FeedURLInput) (feed.FeedURLOutput, error) {
	if m.token == "" && !input.Create {
		return feed.FeedURLOutput{}, feed.ErrTokenNotFound
	}
	if m.token == "" {
		m.token = "generated"
		return feed.FeedURLOutput{URL: "https://venue.example/?calendar_feed=1&token=generated", Token: m.token, Created: true}, nil
	}
	return feed.FeedURLOutput{URL: "https://venue.example/?calendar_feed=1&token=" + m.token, Token: m.token}, nil
}

func (m *mockUseCase) RegenerateToken(ctx context.Context) (feed.FeedURLOutput, error) {
	m.token = "fresh"
	return feed.FeedURLOutput{Token: m.token, Created: true}, nil
}

func (m *mockUseCase) SetToken(ctx context.Context, input feed.SetTokenInput) (feed.FeedURLOutput, error) {
	m.lastSet = input.Token
	if m.setErr != nil {
		return feed.FeedURLOutput{}, m.setErr
	}
	m.token = input.Token
	return feed.FeedURLOutput{Token: m.token}, nil
}

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

func newEngine(uc feed.UseCase, limiter feedHTTP.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := feedHTTP.New(&mockLogger{}, uc, feedHTTP.GateConfig{}, limiter)

	r := gin.New()
	r.Use(h.Gate())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	feedHTTP.RegisterRoutes(r.Group("/api/v1/feed"), h, middleware.New(&mockLogger{}, "admin-key"))
	return r
}

func TestGate(t *testing.T) {
	tests := []struct {
		name     string
		uc       *mockUseCase
		limiter  feedHTTP.Limiter
		target   string
		wantCode int
		wantBody string
	}{
		{name: "No feed parameter passes through", uc: &mockUseCase{enabled: true, token: "abc"}, target: "/", wantCode: 200, wantBody: "home"},
		{name: "Valid token", uc: &mockUseCase{enabled: true, token: "abc"}, target: "/?calendar_feed=1&token=abc", wantCode: 200, wantBody: calendarBody},
		{name: "Feed on unknown path", uc: &mockUseCase{enabled: true, token: "abc"}, target: "/agenda?calendar_feed&token=abc", wantCode: 200, wantBody: calendarBody},
		{name: "Wrong token", uc: &mockUseCase{enabled: true, token: "abc"}, target: "/?calendar_feed=1&token=abd", wantCode: 403, wantBody: "Access denied"},
		{name: "Missing token", uc: &mockUseCase{enabled: true, token: "abc"}, target: "/?calendar_feed=1", wantCode: 403, wantBody: "Access denied"},
		{name: "No token generated yet", uc: &mockUseCase{enabled: true}, target: "/?calendar_feed=1&token=", wantCode: 403, wantBody: "Access denied"},
		{name: "Disabled regardless of token", uc: &mockUseCase{enabled: false, token: "abc"}, target: "/?calendar_feed=1&token=abc", wantCode: 404, wantBody: "Not found"},
		{name: "Disabled before rate limit", uc: &mockUseCase{enabled: false, token: "abc"}, limiter: denyAll{}, target: "/?calendar_feed=1&token=abc", wantCode: 404, wantBody: "Not found"},
		{name: "Rate limited", uc: &mockUseCase{enabled: true, token: "abc"}, limiter: denyAll{}, target: "/?calendar_feed=1&token=abc", wantCode: 429, wantBody: "Too many requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(tt.uc, tt.limiter)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("unexpected body %q", w.Body.String())
			}
			if tt.wantCode != 200 && tt.uc.feedHits != 0 {
				t.Errorf("calendar content must not be generated on denial")
			}
		})
	}
}

func TestGateHeaders(t *testing.T) {
	r := newEngine(&mockUseCase{enabled: true, token: "abc"}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?calendar_feed=1&token=abc", nil))

	want := map[string]string{
		"Content-Type":        "text/calendar; charset=utf-8",
		"Content-Disposition": `attachment; filename="events.ics"`,
		"Cache-Control":       "private, max-age=900",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if w.Header().Get("Pragma") != "" || w.Header().Get("Expires") != "" {
		t.Errorf("no-cache headers must be removed")
	}
}

func TestAdminRoutes(t *testing.T) {
	do := func(r *gin.Engine, method, target, body, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set(middleware.InternalKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Requires internal key", func(t *testing.T) {
		r := newEngine(&mockUseCase{enabled: true}, nil)
		if w := do(r, http.MethodGet, "/api/v1/feed/url", "", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Feed URL lifecycle", func(t *testing.T) {
		uc := &mockUseCase{enabled: true}
		r := newEngine(uc, nil)

		if w := do(r, http.MethodGet, "/api/v1/feed/url", "", "admin-key"); w.Code != http.StatusNotFound {
			t.Errorf("expected 404 without token, got %d", w.Code)
		}

		w := do(r, http.MethodGet, "/api/v1/feed/url?create=true", "", "admin-key")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data, _ := resp.Data.(map[string]any)
		if data["token"] != "generated" || data["created"] != true {
			t.Errorf("unexpected data %v", data)
		}

		if w := do(r, http.MethodPost, "/api/v1/feed/token/regenerate", "", "admin-key"); w.Code != http.StatusOK || uc.token != "fresh" {
			t.Errorf("regenerate failed: %d %q", w.Code, uc.token)
		}
	})

	t.Run("Set token", func(t *testing.T) {
		uc := &mockUseCase{enabled: true}
		r := newEngine(uc, nil)

		if w := do(r, http.MethodPut, "/api/v1/feed/token", `{"token":"abc123"}`, "admin-key"); w.Code != http.StatusOK || uc.token != "abc123" {
			t.Errorf("set token failed: %d %q", w.Code, uc.token)
		}
		if w := do(r, http.MethodPut, "/api/v1/feed/token", `{}`, "admin-key"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for missing token, got %d", w.Code)
		}

		uc.setErr = feed.ErrInvalidToken
		if w := do(r, http.MethodPut, "/api/v1/feed/token", `{"token":"!!!"}`, "admin-key"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for invalid token, got %d", w.Code)
		}
	})
}
