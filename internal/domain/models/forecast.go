package models

import "time"

// ForecastRequest is the raw POST /forecast body. Optional fields are pointers so
// an absent key can be told apart from an explicit zero value; defaults are applied
// only when the key is absent.
type ForecastRequest struct {
	Symbol *string `json:"symbol" validate:"required"`
	Model  *string `json:"model" default:"LSTM"`
	Days   *int    `json:"days" default:"30"`
}

// ValidatedRequest is a normalized forecast request that passed all checks.
// Symbol and Model are upper-cased and verified against the supported sets.
type ValidatedRequest struct {
	Symbol string
	Model  string
	Days   int
}

// ForecastPoint is a single predicted day in a forecast series.
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	PredictedPrice float64   `json:"predicted_price"`
	Confidence     float64   `json:"confidence"`
	UpperBound     float64   `json:"upper_bound"`
	LowerBound     float64   `json:"lower_bound"`
}

// ForecastData is the success payload of POST /forecast.
type ForecastData struct {
	Symbol         string          `json:"symbol"`
	Model          string          `json:"model"`
	ForecastPeriod string          `json:"forecast_period"`
	ModelAccuracy  float64         `json:"model_accuracy"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Forecast       []ForecastPoint `json:"forecast"`
}
