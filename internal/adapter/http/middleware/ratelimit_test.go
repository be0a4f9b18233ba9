package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/paisa/internal/infrastructure/metrics"
)

func TestRateLimiterPerIP(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	rl := NewRateLimiter(0.001, 1, m)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tips", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("1.2.3.4:1000"); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := do("1.2.3.4:2000"); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request from same host to be throttled, got %d", code)
	}
	if code := do("5.6.7.8:1000"); code != http.StatusOK {
		t.Fatalf("expected other host to pass, got %d", code)
	}
	if got := testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/api/v1/tips")); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %v", got)
	}

	rl.CleanupLimiters()
	if code := do("1.2.3.4:3000"); code != http.StatusOK {
		t.Fatalf("expected request after cleanup to pass, got %d", code)
	}
}

func TestGetIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := getIP(req); got != "9.9.9.9" {
		t.Fatalf("expected host without port, got %q", got)
	}

	req.Header.Set("X-Real-IP", "8.8.8.8")
	if got := getIP(req); got != "8.8.8.8" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "7.7.7.7, 10.0.0.1")
	if got := getIP(req); got != "7.7.7.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}
