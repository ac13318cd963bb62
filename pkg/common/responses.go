package common

import (
	"encoding/json"
	"net/http"
)

// OKResponse is the success envelope shared by all endpoints.
// Payload fields are flattened next to "ok".
type OKResponse map[string]interface{}

// RespondOK sends a success response, merging payload fields into the envelope
func RespondOK(w http.ResponseWriter, status int, payload map[string]interface{}) {
	body := OKResponse{"ok": true}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// ExtractRequestID extracts the request ID from the request headers
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Amzn-Trace-Id"); id != "" {
		return id
	}
	return ""
}

// ParseJSONBody parses JSON request body with size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(v); err != nil {
		return err
	}

	return nil
}
