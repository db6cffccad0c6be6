package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"venue-calendar/internal/middleware"
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

func TestInternalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
	}{
		{name: "Valid key", configured: "k3y", sent: "k3y", wantCode: http.StatusOK},
		{name: "Wrong key", configured: "k3y", sent: "nope", wantCode: http.StatusUnauthorized},
		{name: "Missing key", configured: "k3y", sent: "", wantCode: http.StatusUnauthorized},
		{name: "Unconfigured key", configured: "", sent: "", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.New(&mockLogger{}, tt.configured)
			r := gin.New()
			r.GET("/admin", mw.InternalAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.sent != "" {
				req.Header.Set(middleware.InternalKeyHeader, tt.sent)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestIPLimiter(t *testing.T) {
	rl := middleware.NewIPLimiter(20) // burst 2

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatalf("burst should be allowed")
	}
	if rl.Allow("1.1.1.1") {
		t.Errorf("third immediate request should be limited")
	}
	if !rl.Allow("2.2.2.2") {
		t.Errorf("other keys have their own budget")
	}

	unlimited := middleware.NewIPLimiter(0)
	for i := 0; i < 100; i++ {
		if !unlimited.Allow("1.1.1.1") {
			t.Fatalf("disabled limiter must allow everything")
		}
	}
}

func TestIPLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := middleware.NewIPLimiter(20) // burst 2

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("3.3.3.3") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 2 {
		t.Errorf("concurrent first requests must share one bucket: %d allowed, want 2", got)
	}
}
