package response

import (
	"encoding/json"
	"net/http"
)

// encodeFailure is sent when a response body cannot be encoded
const encodeFailure = `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`

// JSON writes data as a JSON response. Game state changes on every action,
// so responses are never cached. The body is encoded before the header is
// written so an encoding failure still becomes a 500.
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(encodeFailure)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
