package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"MLService/internal/domain/models"
	"MLService/internal/service/catalog"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Supported index symbols.
const (
	SymbolSensex  = "SENSEX"
	SymbolNifty50 = "NIFTY50"
)

// SupportedSymbols lists the symbols accepted by validation, in reporting order.
var SupportedSymbols = []string{SymbolSensex, SymbolNifty50}

// ValidationError describes why a forecast request was rejected. The same input
// always yields the same error.
type ValidationError struct {
	Reason  string // metrics label: missing_body, missing_fields, invalid_symbol, invalid_model
	Message string // envelope message, e.g. "Invalid symbol"
	Details string // human-readable specifics
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

func errInvalidBody() *ValidationError {
	return &ValidationError{
		Reason:  "missing_body",
		Message: "Invalid request",
		Details: "Request body must be valid JSON",
	}
}

// Validator checks raw forecast request bodies against the supported symbols and
// the model catalog. It holds no mutable state.
type Validator struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewValidator creates a request validator backed by the given catalog.
func NewValidator(cat *catalog.Catalog) *Validator {
	v := validator.New()
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{catalog: cat, validate: v}
}

// Validate parses and checks a raw request body. Checks run in order and stop at
// the first failure: body present and well-formed, required fields present, symbol
// supported, model known. Symbol and model comparisons are case-insensitive.
func (v *Validator) Validate(body []byte) (*models.ValidatedRequest, *ValidationError) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errInvalidBody()
	}

	req := &models.ForecastRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, errInvalidBody()
	}
	if err := defaults.Set(req); err != nil {
		return nil, errInvalidBody()
	}

	if err := v.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					missing = append(missing, fe.Field())
				}
			}
			if len(missing) > 0 {
				return nil, &ValidationError{
					Reason:  "missing_fields",
					Message: "Missing required fields",
					Details: "Missing fields: " + strings.Join(missing, ", "),
				}
			}
		}
		return nil, errInvalidBody()
	}

	symbol := strings.ToUpper(*req.Symbol)
	if symbol != SymbolSensex && symbol != SymbolNifty50 {
		return nil, &ValidationError{
			Reason:  "invalid_symbol",
			Message: "Invalid symbol",
			Details: fmt.Sprintf("Symbol '%s' not supported. Available: %s", symbol, strings.Join(SupportedSymbols, ", ")),
		}
	}

	model := strings.ToUpper(*req.Model)
	if _, ok := v.catalog.Lookup(model); !ok {
		return nil, &ValidationError{
			Reason:  "invalid_model",
			Message: "Invalid model",
			Details: fmt.Sprintf("Model '%s' not available. Available: %s", model, strings.Join(v.catalog.Names(), ", ")),
		}
	}

	return &models.ValidatedRequest{Symbol: symbol, Model: model, Days: *req.Days}, nil
}
