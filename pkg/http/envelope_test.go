package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelopeShape(t *testing.T) {
	w := NewEnvelopeWriter("ml-service", false)
	c, rec := newContext()
	if err := w.Success(c, "ok", map[string]int{"n": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != "success" || got["message"] != "ok" || got["service"] != "ml-service" {
		t.Fatalf("unexpected envelope %v", got)
	}
	if _, present := got["code"]; present {
		t.Fatalf("success envelope must not carry a code")
	}
	if _, present := got["details"]; present {
		t.Fatalf("success envelope must not carry details")
	}
	if _, err := time.Parse(time.RFC3339Nano, got["timestamp"].(string)); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	w := NewEnvelopeWriter("ml-service", false)
	c, rec := newContext()
	if err := w.Error(c, 400, "Invalid symbol", "nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != "error" || got["code"].(float64) != 400 || got["details"] != "nope" {
		t.Fatalf("unexpected envelope %v", got)
	}
	if _, present := got["data"]; present {
		t.Fatalf("error envelope must not carry data")
	}
}

func TestErrorDetailDisclosure(t *testing.T) {
	err := errors.New("connection reset")

	w := NewEnvelopeWriter("ml-service", true)
	if got := w.ErrorDetail(err, "generic"); got != "connection reset" {
		t.Fatalf("debug should expose the error, got %q", got)
	}

	w = NewEnvelopeWriter("ml-service", false)
	if got := w.ErrorDetail(err, "generic"); got != "generic" {
		t.Fatalf("production should hide the error, got %q", got)
	}
	if got := w.ErrorDetail(nil, "generic"); got != "generic" {
		t.Fatalf("nil error should fall back, got %q", got)
	}
}
