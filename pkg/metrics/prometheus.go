package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records forecast-domain metrics with Prometheus.
type Recorder struct {
	forecastsTotal     *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	horizonDays        prometheus.Histogram
	lastPredicted      *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlservice_forecasts_generated_total",
				Help: "Total number of forecast series generated",
			},
			[]string{"symbol", "model"},
		),
		validationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlservice_validation_failures_total",
				Help: "Total number of rejected forecast requests",
			},
			[]string{"reason"},
		),
		horizonDays: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mlservice_forecast_horizon_days",
				Help:    "Requested forecast horizon in days",
				Buckets: []float64{1, 7, 14, 30, 60, 90, 180, 365},
			},
		),
		lastPredicted: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mlservice_last_predicted_price",
				Help: "Final predicted price of the most recent forecast for a symbol",
			},
			[]string{"symbol"},
		),
	}
}

// RecordForecast records a successfully generated forecast.
func (r *Recorder) RecordForecast(symbol, model string, days int, lastPrice float64) {
	r.forecastsTotal.WithLabelValues(symbol, model).Inc()
	r.horizonDays.Observe(float64(days))
	r.lastPredicted.WithLabelValues(symbol).Set(lastPrice)
}

// RecordValidationFailure records a rejected request by reason.
func (r *Recorder) RecordValidationFailure(reason string) {
	r.validationFailures.WithLabelValues(reason).Inc()
}
