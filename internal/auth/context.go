// Package auth provides authentication context helpers and the identity-match
// authorization predicate.
//
// This package is designed to be imported by both middleware and handler
// packages without causing import cycles.
package auth

import (
	"context"

	"github.com/Albab47/librarylog-server/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// claimsContextKey is the key used to store the decoded credential claims
// in the request context.
const claimsContextKey contextKey = "claims"

// GetClaims retrieves the decoded credential claims from the context.
//
// Returns nil if the request did not pass through the authentication gate
// or carried no valid credential.
func GetClaims(ctx context.Context) domain.Claims {
	claims, ok := ctx.Value(claimsContextKey).(domain.Claims)
	if !ok {
		return nil
	}
	return claims
}

// SetClaims stores decoded credential claims in the context.
//
// This is called by the authentication gate after a credential verifies;
// the claims live only for the duration of the request.
func SetClaims(ctx context.Context, claims domain.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// MatchIdentity is the resource-ownership predicate applied by handlers that
// mutate identity-keyed records. It allows the operation iff the
// authenticated claim email exactly equals the target email (case-sensitive).
//
// The gate itself never enforces ownership: different resources key ownership
// differently, so each gated handler applies this check against whatever
// identity parameter names its target.
func MatchIdentity(claims domain.Claims, targetEmail string) error {
	const op = "auth.match_identity"

	if claims == nil {
		return domain.Unauthorized(op, "Authentication required")
	}
	if claims.Email() != targetEmail {
		return domain.Forbidden(op, "forbidden access")
	}
	return nil
}
