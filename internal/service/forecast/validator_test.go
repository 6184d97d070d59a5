package forecast

import (
	"testing"

	"MLService/internal/service/catalog"
)

func newTestValidator() *Validator {
	return NewValidator(catalog.New())
}

func TestValidateMissingBody(t *testing.T) {
	v := newTestValidator()
	for _, body := range [][]byte{nil, []byte(""), []byte("   "), []byte("{not json")} {
		_, verr := v.Validate(body)
		if verr == nil {
			t.Fatalf("expected error for %q", body)
		}
		if verr.Message != "Invalid request" {
			t.Fatalf("unexpected message %q", verr.Message)
		}
		if verr.Details != "Request body must be valid JSON" {
			t.Fatalf("unexpected details %q", verr.Details)
		}
	}
}

func TestValidateMissingSymbol(t *testing.T) {
	v := newTestValidator()
	_, verr := v.Validate([]byte(`{}`))
	if verr == nil {
		t.Fatalf("expected error")
	}
	if verr.Message != "Missing required fields" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if verr.Details != "Missing fields: symbol" {
		t.Fatalf("unexpected details %q", verr.Details)
	}
}

func TestValidateInvalidSymbol(t *testing.T) {
	v := newTestValidator()
	_, verr := v.Validate([]byte(`{"symbol":"DOWJONES"}`))
	if verr == nil {
		t.Fatalf("expected error")
	}
	if verr.Message != "Invalid symbol" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	want := "Symbol 'DOWJONES' not supported. Available: SENSEX, NIFTY50"
	if verr.Details != want {
		t.Fatalf("unexpected details %q", verr.Details)
	}
}

func TestValidateEmptySymbolIsInvalidNotMissing(t *testing.T) {
	// A present-but-empty symbol fails the membership check, not presence.
	v := newTestValidator()
	_, verr := v.Validate([]byte(`{"symbol":""}`))
	if verr == nil || verr.Message != "Invalid symbol" {
		t.Fatalf("expected invalid symbol, got %+v", verr)
	}
}

func TestValidateInvalidModel(t *testing.T) {
	v := newTestValidator()
	_, verr := v.Validate([]byte(`{"symbol":"NIFTY50","model":"PROPHET"}`))
	if verr == nil {
		t.Fatalf("expected error")
	}
	if verr.Message != "Invalid model" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	want := "Model 'PROPHET' not available. Available: LSTM, CNN_LSTM, ARIMA, SARIMA, ARCH_GARCH"
	if verr.Details != want {
		t.Fatalf("unexpected details %q", verr.Details)
	}
}

func TestValidateDefaults(t *testing.T) {
	v := newTestValidator()
	req, verr := v.Validate([]byte(`{"symbol":"SENSEX"}`))
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Symbol != "SENSEX" || req.Model != "LSTM" || req.Days != 30 {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestValidateCaseInsensitive(t *testing.T) {
	v := newTestValidator()
	req, verr := v.Validate([]byte(`{"symbol":"sensex","model":"arima"}`))
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Symbol != "SENSEX" || req.Model != "ARIMA" {
		t.Fatalf("unexpected normalization %+v", req)
	}
}

func TestValidateExplicitValuesKept(t *testing.T) {
	v := newTestValidator()
	req, verr := v.Validate([]byte(`{"symbol":"NIFTY50","model":"SARIMA","days":7}`))
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Symbol != "NIFTY50" || req.Model != "SARIMA" || req.Days != 7 {
		t.Fatalf("unexpected request %+v", req)
	}

	// An explicit zero is not replaced by the default.
	req, verr = v.Validate([]byte(`{"symbol":"NIFTY50","days":0}`))
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Days != 0 {
		t.Fatalf("expected days 0, got %d", req.Days)
	}
}

func TestValidateIdempotent(t *testing.T) {
	v := newTestValidator()
	body := []byte(`{"symbol":"DOWJONES"}`)
	_, first := v.Validate(body)
	_, second := v.Validate(body)
	if first == nil || second == nil {
		t.Fatalf("expected errors")
	}
	if *first != *second {
		t.Fatalf("same input produced different errors: %+v vs %+v", first, second)
	}
}
