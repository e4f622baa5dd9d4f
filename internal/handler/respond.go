// Package handler contains the HTTP handlers for the librarylog API.
//
// Handlers decode JSON request bodies, apply per-route authorization checks,
// call the service layer, and encode JSON responses. Records are passed
// through unchanged; a missing record is rendered as a JSON null body, not
// an error.
package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status.
// A nil v encodes as a JSON null, which is how absent records are reported.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into dst, limiting the body size to
// guard against oversized payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	const maxBodyBytes = 1 << 20 // 1 MiB
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
