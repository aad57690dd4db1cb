package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// FieldIssue describes a single field validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports that client data violated a declared schema. It
// carries every field violation found, in order, and translates to a 400
// response with the full list.
type ValidationError struct {
	Message string
	Issues  []FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%d issues)", e.Message, len(e.Issues))
}

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// APIError is the sanctioned way for a handler to signal a client-facing
// failure with an explicit status. Its message is surfaced verbatim.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

// StatusCode returns the HTTP status carried by the error.
func (e *APIError) StatusCode() int { return e.Status }

// Error returns an APIError with the given status and message.
func Error(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// Errorf returns an APIError with a formatted message.
func Errorf(status int, format string, args ...any) *APIError {
	return &APIError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// ErrorTranslator is the terminal failure handler: it maps an error raised
// anywhere in the pipeline to an HTTP response. It runs at most once per
// request.
type ErrorTranslator func(w http.ResponseWriter, r *http.Request, err error)

// validationBody is the 400 response shape.
type validationBody struct {
	Message string       `json:"message"`
	Errors  []FieldIssue `json:"errors"`
}

// messageBody is the response shape for declared and undeclared failures.
type messageBody struct {
	Message string `json:"message"`
}

// NewErrorTranslator builds the default translator. Validation failures
// become 400 with the full issue list, declared failures keep their status
// and message, and anything else becomes an opaque 500 whose detail goes
// to the operational log only.
func NewErrorTranslator(log zerolog.Logger) ErrorTranslator {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if started(w) {
			// The response is already on the wire; a second write would
			// corrupt it. Surface the failure operationally instead.
			log.Error().Err(err).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("failure after response started")
			return
		}

		switch e := err.(type) {
		case *ValidationError:
			writeJSON(w, http.StatusBadRequest, validationBody{Message: e.Message, Errors: e.Issues})
		case *APIError:
			writeJSON(w, e.Status, messageBody{Message: e.Message})
		default:
			if sc, ok := err.(StatusCoder); ok {
				writeJSON(w, sc.StatusCode(), messageBody{Message: err.Error()})
				return
			}
			log.Error().Err(err).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("unhandled failure in request pipeline")
			writeJSON(w, http.StatusInternalServerError, messageBody{
				Message: http.StatusText(http.StatusInternalServerError),
			})
		}
	}
}

// responseRecorder wraps http.ResponseWriter to track whether the response
// has begun transmission.
type responseRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.wrote = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.wrote = true
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter (supports http.ResponseController).
func (r *responseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// started reports whether a response has begun transmission on w.
func started(w http.ResponseWriter) bool {
	rec, ok := w.(*responseRecorder)
	return ok && rec.wrote
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The header is committed; an encode failure here can only be logged
	// by the caller's middleware.
	_ = json.NewEncoder(w).Encode(body)
}
