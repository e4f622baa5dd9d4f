// Package middleware contains HTTP middleware for the librarylog API.
//
// Middleware functions follow the standard Go pattern of wrapping
// http.Handler and are composed with Stack.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Albab47/librarylog-server/internal/auth"
	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/handler"
	"github.com/Albab47/librarylog-server/internal/metrics"
	"github.com/Albab47/librarylog-server/internal/session"
)

// TokenVerifier validates a signed credential and returns its identity claims.
// Satisfied by *token.Manager; an interface here allows mocking in tests.
type TokenVerifier interface {
	Verify(tokenString string) (domain.Claims, error)
}

// AuthMiddleware provides the authentication gate for protected routes.
type AuthMiddleware struct {
	tokens TokenVerifier
	logger *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(tokens TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// RequireToken is the gate applied to identity-sensitive mutating routes.
//
// Flow:
//  1. No credential cookie -> 401, downstream handler never runs.
//  2. Signature/expiry verification fails for any reason -> 401.
//  3. On success the decoded claims are attached to the request context and
//     the downstream handler runs. Resource-level ownership is NOT checked
//     here; gated handlers apply their own identity-match check.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			metrics.TokenVerifications.WithLabelValues("missing").Inc()
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}

		claims, err := m.tokens.Verify(cookie.Value)
		if err != nil {
			metrics.TokenVerifications.WithLabelValues("invalid").Inc()
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}

		metrics.TokenVerifications.WithLabelValues("ok").Inc()

		ctx := auth.SetClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Stack composes multiple middleware functions into a single middleware.
//
// Middleware is applied in the order provided: the first middleware in the
// slice is the outermost (runs first on request, last on response).
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
