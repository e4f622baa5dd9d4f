// Package session provides the shared credential-cookie configuration used
// by both the handler and middleware packages.
package session

import "net/http"

const (
	// CookieName is the name of the cookie that stores the signed credential.
	CookieName = "token"

	// CookiePath ensures the cookie is sent with all requests.
	CookiePath = "/"

	// CookieMaxAge sets the cookie expiration (1 hour = 3600 seconds).
	// This matches TokenDuration in the token package.
	CookieMaxAge = 60 * 60
)

// SetCookie attaches the signed credential to the response.
//
// The cookie is always HttpOnly. In production the server sits behind TLS
// and serves a cross-site frontend, so the cookie is Secure with
// SameSite=None; in development it is non-secure with SameSite=Strict.
func SetCookie(w http.ResponseWriter, token string, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     CookiePath,
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: sameSite(isProduction),
	})
}

// ClearCookie removes the credential cookie from the client by re-setting it
// with immediate expiry. Always succeeds; clearing an absent cookie is a
// no-op on the client.
func ClearCookie(w http.ResponseWriter, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1, // Delete immediately
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: sameSite(isProduction),
	})
}

func sameSite(isProduction bool) http.SameSite {
	if isProduction {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
