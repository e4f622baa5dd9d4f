package middleware

import (
	"net/http"
	"strings"
)

// CORSMiddleware handles credentialed cross-origin requests from the
// configured frontend origins.
//
// Because the credential travels in a cookie, Access-Control-Allow-Origin
// must echo a specific allowed origin (never *) together with
// Access-Control-Allow-Credentials.
type CORSMiddleware struct {
	allowedOrigins map[string]struct{}
}

// NewCORSMiddleware creates a CORS middleware allowing the given origins.
func NewCORSMiddleware(origins []string) *CORSMiddleware {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[strings.TrimSuffix(origin, "/")] = struct{}{}
	}
	return &CORSMiddleware{allowedOrigins: allowed}
}

// Handler returns middleware that sets CORS headers and answers preflights.
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Responses vary by origin regardless of whether it is allowed.
		w.Header().Add("Vary", "Origin")

		if _, ok := m.allowedOrigins[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// Preflight requests are answered here and never reach a handler.
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
