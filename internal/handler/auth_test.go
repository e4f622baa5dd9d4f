package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/session"
	"github.com/Albab47/librarylog-server/internal/token"
)

// newTestLogger creates a logger that only reports errors during tests.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// mockIssuer implements TokenIssuer for failure-path tests.
type mockIssuer struct {
	IssueFunc func(claims domain.Claims) (string, error)
}

func (m *mockIssuer) Issue(claims domain.Claims) (string, error) {
	return m.IssueFunc(claims)
}

func credentialCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("credential cookie not set")
	return nil
}

func TestIssueToken_SetsCredentialCookie(t *testing.T) {
	tokens, err := token.NewManager([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAuthHandler(tokens, newTestLogger(), false)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !body["success"] {
		t.Errorf("body = %v, want success=true", body)
	}

	// The attached credential verifies back to the issued payload.
	cookie := credentialCookie(t, rec)
	claims, err := tokens.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("issued credential does not verify: %v", err)
	}
	if claims.Email() != "a@x.com" {
		t.Errorf("claims email = %q, want %q", claims.Email(), "a@x.com")
	}
	if !cookie.HttpOnly {
		t.Error("credential cookie must be HttpOnly")
	}
}

func TestIssueToken_InvalidBody(t *testing.T) {
	tokens, err := token.NewManager([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAuthHandler(tokens, newTestLogger(), false)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestIssueToken_SigningFailure(t *testing.T) {
	h := NewAuthHandler(&mockIssuer{
		IssueFunc: func(claims domain.Claims) (string, error) {
			return "", errors.New("boom")
		},
	}, newTestLogger(), false)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Errorf("response exposes internal error: %s", rec.Body.String())
	}
}

func TestLogout_ClearsCredentialCookie(t *testing.T) {
	tokens, err := token.NewManager([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAuthHandler(tokens, newTestLogger(), false)

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}

	cookie := credentialCookie(t, rec)
	if cookie.Value != "" {
		t.Errorf("cookie value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge != -1 {
		t.Errorf("cookie MaxAge = %d, want -1", cookie.MaxAge)
	}
}
