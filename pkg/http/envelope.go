package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper returned by every endpoint. Error responses
// carry code and details; success responses carry data.
type Envelope struct {
	Status    string      `json:"status"`
	Code      int         `json:"code,omitempty"`
	Message   string      `json:"message"`
	Details   string      `json:"details,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
	Service   string      `json:"service"`
}

// NotFoundEnvelope extends the error envelope with the list of valid routes.
type NotFoundEnvelope struct {
	Envelope
	AvailableEndpoints []string `json:"available_endpoints"`
}

// EnvelopeWriter stamps envelopes with the service identifier and decides how
// much internal error detail to disclose. Debug is an explicit switch, never an
// ambient flag.
type EnvelopeWriter struct {
	Service string
	Debug   bool
}

// NewEnvelopeWriter creates an envelope writer for the named service.
func NewEnvelopeWriter(service string, debug bool) *EnvelopeWriter {
	return &EnvelopeWriter{Service: service, Debug: debug}
}

// NewSuccess builds a success envelope without writing it. Handlers that add
// extra top-level fields embed the result.
func (w *EnvelopeWriter) NewSuccess(message string) Envelope {
	return Envelope{
		Status:    "success",
		Message:   message,
		Timestamp: w.timestamp(),
		Service:   w.Service,
	}
}

// Success writes a 200 envelope carrying data.
func (w *EnvelopeWriter) Success(c echo.Context, message string, data interface{}) error {
	env := w.NewSuccess(message)
	env.Data = data
	return c.JSON(http.StatusOK, env)
}

// Error writes an error envelope with the given HTTP status code.
func (w *EnvelopeWriter) Error(c echo.Context, code int, message, details string) error {
	return c.JSON(code, Envelope{
		Status:    "error",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: w.timestamp(),
		Service:   w.Service,
	})
}

// NotFound writes a 404 envelope enumerating the valid endpoints.
func (w *EnvelopeWriter) NotFound(c echo.Context, path string, endpoints []string) error {
	return c.JSON(http.StatusNotFound, NotFoundEnvelope{
		Envelope: Envelope{
			Status:    "error",
			Code:      http.StatusNotFound,
			Message:   "Endpoint not found",
			Details:   "The requested endpoint '" + path + "' does not exist",
			Timestamp: w.timestamp(),
			Service:   w.Service,
		},
		AvailableEndpoints: endpoints,
	})
}

// ErrorDetail returns the real error text in debug mode and the fallback
// otherwise. The conditional disclosure is deliberate: raw faults must not
// reach callers in production.
func (w *EnvelopeWriter) ErrorDetail(err error, fallback string) string {
	if w.Debug && err != nil {
		return err.Error()
	}
	return fallback
}

func (w *EnvelopeWriter) timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
