// Package domain contains core business types and interfaces.
//
// This file defines the identity claim carried by a signed credential.
// A claim is decoded once per request by the auth middleware and threaded
// through the request context; it is never persisted.
package domain

// Claims is the identity payload embedded in a signed credential.
//
// The payload is supplied by the caller at token issuance and is treated as
// opaque beyond the email field. Reserved registered claims (exp, iat) are
// managed by the token layer and are not part of the identity payload.
type Claims map[string]interface{}

// Email returns the email claim, or "" if absent or not a string.
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}
