package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Envelope is the uniform response wrapper every endpoint returns
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondWithData sends a success envelope carrying a payload
func RespondWithData(w http.ResponseWriter, statusCode int, data interface{}) {
	writeEnvelope(w, statusCode, Envelope{Success: true, Data: data})
}

// RespondWithMessage sends a success envelope with a payload and a
// human-readable message
func RespondWithMessage(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeEnvelope(w, statusCode, Envelope{Success: true, Data: data, Message: message})
}

// RespondWithError sends a failure envelope. The error string is the only
// detail exposed; internal error text never reaches the client.
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{Success: false, Error: message})
}

// RespondWithValidationErrors sends a failure envelope summarizing the
// failed fields
func RespondWithValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	parts := make([]string, len(errors))
	for i, e := range errors {
		parts[i] = e.Field + ": " + e.Message
	}
	writeEnvelope(w, http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "validation failed",
		Message: strings.Join(parts, "; "),
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope)
}

// ErrorHandlingMiddleware catches panics and converts them to 500 envelopes
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
