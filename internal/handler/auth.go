package handler

import (
	"log/slog"
	"net/http"

	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/metrics"
	"github.com/Albab47/librarylog-server/internal/session"
)

// TokenIssuer signs an identity payload into a session credential.
// Satisfied by *token.Manager; an interface here allows mocking in tests.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// AuthHandler handles credential issuance and revocation.
//
// Routes handled:
// - POST /jwt    -> IssueToken
// - POST /logout -> Logout
type AuthHandler struct {
	tokens       TokenIssuer
	logger       *slog.Logger
	isProduction bool
}

// NewAuthHandler creates a new AuthHandler.
// Set isProduction to true behind TLS; it controls the cookie attributes.
func NewAuthHandler(tokens TokenIssuer, logger *slog.Logger, isProduction bool) *AuthHandler {
	return &AuthHandler{
		tokens:       tokens,
		logger:       logger,
		isProduction: isProduction,
	}
}

// RegisterRoutes registers the auth routes on the mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /jwt", h.IssueToken)
	mux.HandleFunc("POST /logout", h.Logout)
}

// IssueToken signs the caller-supplied identity payload into a credential
// and attaches it to the response as an HTTP-only cookie.
//
// The payload is trusted as supplied: no password or credential verification
// happens here. If an identity-provider step exists in the deployment, it
// runs before this endpoint is called.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var claims domain.Claims
	if err := decodeJSON(r, &claims); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("auth.issue_token", "Invalid JSON body"))
		return
	}

	tokenString, err := h.tokens.Issue(claims)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Internal(err, "auth.issue_token", "Failed to issue credential"))
		return
	}

	metrics.TokensIssued.Inc()
	h.logger.Info("credential issued", "email", claims.Email())

	session.SetCookie(w, tokenString, h.isProduction)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout clears the credential cookie. Idempotent: clearing an already
// absent cookie still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.isProduction)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
