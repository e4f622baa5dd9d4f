// Package token issues and verifies the signed session credentials used by
// the authentication gate.
//
// Credentials are stateless HS256 JWTs carrying the caller-supplied identity
// payload plus a fixed one-hour expiry. Nothing is persisted server-side:
// a credential is valid iff its signature checks out and it has not expired.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/Albab47/librarylog-server/internal/domain"
)

// TokenDuration is the fixed validity window of an issued credential.
// One hour bounds credential lifetime without requiring revocation lists.
const TokenDuration = 1 * time.Hour

// Reserved registered claims managed by this package. They are stripped when
// a verified credential is decoded so the returned claims equal the payload
// that was issued.
var reservedClaims = map[string]struct{}{
	"exp": {},
	"iat": {},
}

// Manager signs and verifies session credentials with a symmetric secret
// held only by the server process.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager. The secret must be non-empty; an empty
// signing key is a startup misconfiguration, not a per-request error.
func NewManager(secret []byte) (*Manager, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token: signing secret must not be empty")
	}
	return &Manager{secret: secret}, nil
}

// Issue signs the identity payload into a credential valid for TokenDuration.
//
// The payload is trusted as supplied by the caller; verifying who the caller
// is belongs to an external identity collaborator, if one exists.
func (m *Manager) Issue(claims domain.Claims) (string, error) {
	return m.issue(claims, TokenDuration)
}

func (m *Manager) issue(claims domain.Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}
	return signed, nil
}

// Verify checks the credential's signature and expiry and returns the decoded
// identity payload.
//
// Any failure (bad signature, wrong signing method, expired, malformed)
// yields a domain.EUNAUTHORIZED error; callers do not need to distinguish
// between the failure modes.
func (m *Manager) Verify(tokenString string) (domain.Claims, error) {
	const op = "token.verify"

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.Unauthorized(op, "Invalid or expired credential")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.Unauthorized(op, "Invalid or expired credential")
	}

	claims := domain.Claims{}
	for k, v := range mapClaims {
		if _, reserved := reservedClaims[k]; reserved {
			continue
		}
		claims[k] = v
	}
	return claims, nil
}
