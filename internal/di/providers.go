package di

import (
	"math/rand"
	"time"

	"MLService/internal/handler/api"
	"MLService/internal/service/catalog"
	"MLService/internal/service/forecast"
	"MLService/pkg/config"
	xhttp "MLService/pkg/http"
	applogger "MLService/pkg/logger"
	"MLService/pkg/metrics"
	"MLService/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideCatalog creates the immutable model catalog.
func ProvideCatalog() *catalog.Catalog {
	return catalog.New()
}

// ProvideMetrics creates the Prometheus domain recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideGaussian creates the production random source. Each process run draws
// a fresh sequence; tests inject their own deterministic source.
func ProvideGaussian() forecast.Gaussian {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ProvideGenerator creates the forecast generator.
func ProvideGenerator(rng forecast.Gaussian) *forecast.Generator {
	return forecast.NewGenerator(rng)
}

// ProvideValidator creates the request validator.
func ProvideValidator(cat *catalog.Catalog) *forecast.Validator {
	return forecast.NewValidator(cat)
}

// ProvideEnvelopeWriter creates the envelope writer with the debug switch
// resolved from config.
func ProvideEnvelopeWriter(cfg *config.Config) *xhttp.EnvelopeWriter {
	return xhttp.NewEnvelopeWriter(api.ServiceName, cfg.Debug())
}

// ProvideForecastHandler creates the forecast endpoint handler.
func ProvideForecastHandler(
	logger *applogger.Logger,
	validator *forecast.Validator,
	generator *forecast.Generator,
	cat *catalog.Catalog,
	rec *metrics.Recorder,
	env *xhttp.EnvelopeWriter,
) *api.ForecastHandler {
	return api.NewForecastHandler(logger, validator, generator, cat, rec, env)
}

// ProvideHealthHandler creates the health and error-probe handler.
func ProvideHealthHandler(cfg *config.Config, cat *catalog.Catalog, env *xhttp.EnvelopeWriter) *api.HealthHandler {
	return api.NewHealthHandler(cfg, cat, env)
}

// ProvideRouter aggregates the handlers into a single route registrar.
func ProvideRouter(forecastHandler *api.ForecastHandler, healthHandler *api.HealthHandler) xhttp.Handler {
	return api.NewRouter(forecastHandler, healthHandler)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	env *xhttp.EnvelopeWriter,
	cat *catalog.Catalog,
) *server.App {
	return server.New(cfg, logger, handler, env, cat)
}
