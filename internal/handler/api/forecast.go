package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"MLService/internal/domain/models"
	"MLService/internal/service/catalog"
	"MLService/internal/service/forecast"
	xhttp "MLService/pkg/http"
	xlogger "MLService/pkg/logger"
	"MLService/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// ForecastHandler serves the forecast and model-catalog endpoints.
type ForecastHandler struct {
	logger    *xlogger.Logger
	validator *forecast.Validator
	generator *forecast.Generator
	catalog   *catalog.Catalog
	metrics   *metrics.Recorder
	env       *xhttp.EnvelopeWriter
}

func NewForecastHandler(
	logger *xlogger.Logger,
	validator *forecast.Validator,
	generator *forecast.Generator,
	cat *catalog.Catalog,
	rec *metrics.Recorder,
	env *xhttp.EnvelopeWriter,
) *ForecastHandler {
	return &ForecastHandler{
		logger:    logger,
		validator: validator,
		generator: generator,
		catalog:   cat,
		metrics:   rec,
		env:       env,
	}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/forecast", h.Forecast)
	e.GET("/models", h.Models)
}

// Forecast validates the request, generates a synthetic series, and wraps it in
// the standard envelope. Validation failures answer 400 with specifics; faults
// during generation answer 500 with detail disclosure gated on debug mode.
func (h *ForecastHandler) Forecast(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.metrics.RecordValidationFailure("missing_body")
		return h.env.Error(c, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
	}

	req, verr := h.validator.Validate(body)
	if verr != nil {
		h.metrics.RecordValidationFailure(verr.Reason)
		h.logger.Debug("forecast request rejected",
			xlogger.String("reason", verr.Reason),
			xlogger.String("details", verr.Details),
		)
		return h.env.Error(c, http.StatusBadRequest, verr.Message, verr.Details)
	}

	series, err := h.generate(req)
	if err != nil {
		h.logger.Error("forecast generation failed",
			xlogger.Error(err),
			xlogger.String("symbol", req.Symbol),
			xlogger.String("model", req.Model),
		)
		return h.env.Error(c, http.StatusInternalServerError, "Forecast generation failed",
			h.env.ErrorDetail(err, "Internal processing error"))
	}

	entry, _ := h.catalog.Lookup(req.Model)
	if n := len(series); n > 0 {
		h.metrics.RecordForecast(req.Symbol, req.Model, req.Days, series[n-1].PredictedPrice)
	}

	h.logger.Info("forecast generated",
		xlogger.String("symbol", req.Symbol),
		xlogger.String("model", req.Model),
		xlogger.Int("days", req.Days),
	)

	return h.env.Success(c, fmt.Sprintf("Forecast generated successfully for %s", req.Symbol), models.ForecastData{
		Symbol:         req.Symbol,
		Model:          req.Model,
		ForecastPeriod: fmt.Sprintf("%d days", req.Days),
		ModelAccuracy:  entry.Accuracy,
		GeneratedAt:    time.Now().UTC(),
		Forecast:       series,
	})
}

// generate isolates the generator call so an internal fault surfaces as an
// error instead of unwinding the whole request.
func (h *ForecastHandler) generate(req *models.ValidatedRequest) (series []models.ForecastPoint, err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return h.generator.Generate(req.Symbol, req.Days, req.Model), nil
}

// ModelsData is the payload of GET /models.
type ModelsData struct {
	Models           map[string]catalog.Entry `json:"models"`
	Count            int                      `json:"count"`
	SupportedSymbols []string                 `json:"supported_symbols"`
}

// Models lists the model catalog and supported symbols. It cannot fail.
func (h *ForecastHandler) Models(c echo.Context) error {
	return h.env.Success(c, "Available models retrieved successfully", ModelsData{
		Models:           h.catalog.List(),
		Count:            h.catalog.Len(),
		SupportedSymbols: forecast.SupportedSymbols,
	})
}
