// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON request/response helpers shared by all
// feature handlers. Every error response has the shape
//
//	{ "message": "...", "error": "..." }
//
// where "error" carries internal diagnostic detail and is only included when
// the app runs in a non-production environment.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// devMode controls whether internal error detail is included in 5xx bodies.
// Set once at startup from the core config; defaults to hiding detail.
var devMode bool

// SetDevMode enables or disables diagnostic detail in error responses.
// Call during startup before the handler is built.
func SetDevMode(on bool) { devMode = on }

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured error response with just a message.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]any{"message": message})
}

// ErrorDetail writes a structured error response. The underlying error is
// included only in dev mode so internals never leak in production.
func ErrorDetail(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]any{"message": message}
	if devMode && err != nil {
		body["error"] = err.Error()
	}
	Write(w, status, body)
}

// Decode reads the request body into dst. Handlers treat a decode failure as
// invalid input (400).
func Decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
