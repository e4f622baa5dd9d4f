package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogging_LogsMethodPathStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewRequestLoggingMiddleware(logger)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/borrowed-books", nil)
	rec := httptest.NewRecorder()

	mw.Handler(next).ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "method=POST") {
		t.Errorf("log missing method: %s", out)
	}
	if !strings.Contains(out, "path=/borrowed-books") {
		t.Errorf("log missing path: %s", out)
	}
	if !strings.Contains(out, "status=201") {
		t.Errorf("log missing status: %s", out)
	}
}

func TestRequestLogging_SkipsHealthAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewRequestLoggingMiddleware(logger)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
	}

	if buf.Len() != 0 {
		t.Errorf("noisy endpoints were logged: %s", buf.String())
	}
}

func TestSanitizePath_RedactsSensitiveParams(t *testing.T) {
	got := sanitizePath("/jwt", "token=abc123&category=Fiction")

	if strings.Contains(got, "abc123") {
		t.Errorf("sensitive value leaked: %s", got)
	}
	if !strings.Contains(got, "token=[REDACTED]") {
		t.Errorf("token param not redacted: %s", got)
	}
	if !strings.Contains(got, "category=Fiction") {
		t.Errorf("benign param dropped: %s", got)
	}
}

func TestSanitizePath_NoQueryPassthrough(t *testing.T) {
	if got := sanitizePath("/books", ""); got != "/books" {
		t.Errorf("got %q, want %q", got, "/books")
	}
}
