package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIName identifies the service in the catch-all error envelope.
const APIName = "Dental Clinic API v1.0.0"

// ErrorEnvelope is the uniform JSON body returned for framework-level
// errors (unmatched routes, malformed requests) as opposed to domain rule
// violations, which are plain-text "Error: <message>" bodies.
type ErrorEnvelope struct {
	Error     bool      `json:"error"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	API       string    `json:"api"`
}

// JSON writes data as a JSON body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Text writes a plain-text body with the given status code.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(message))
}

// DomainError writes the 400 plain-text "Error: <message>" body used for
// recognized rule violations (not-found, uniqueness conflict, past date).
func DomainError(w http.ResponseWriter, err error) {
	Text(w, http.StatusBadRequest, "Error: "+err.Error())
}

// NotFound writes an empty 404, used when a GET targets a missing id.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// InternalServerError writes a 500 with no body detail.
func InternalServerError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
}

// Envelope writes the catch-all JSON error envelope for the request.
func Envelope(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	JSON(w, statusCode, ErrorEnvelope{
		Error:     true,
		Status:    statusCode,
		Message:   message,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC(),
		API:       APIName,
	})
}
