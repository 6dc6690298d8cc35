// Package httputil centralizes JSON response writing so every handler produces
// the same envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "flightplanner/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError translates a domain error into an HTTP response. The error code
// is always returned; the description is omitted for internal errors so
// diagnostic detail never reaches clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = dErrors.MessageOf(err)
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// WriteNotFound writes the empty-result 404 used when a lookup returns an
// absent value rather than an error.
func WriteNotFound(w http.ResponseWriter) {
	WriteJSON(w, http.StatusNotFound, map[string]string{"error": string(dErrors.CodeNotFound)})
}
