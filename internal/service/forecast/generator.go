package forecast

import (
	"math"
	"time"

	"MLService/internal/domain/models"
)

const (
	sensexBasePrice  = 72500.0
	niftyBasePrice   = 21850.0
	dailyVolatility  = 0.02
	maxConfidence    = 0.95
	minConfidence    = 0.60
	confidenceDecay  = 0.01
	boundSpreadRatio = 0.05
)

// Gaussian yields normally distributed draws with mean 0 and stddev 1.
// *math/rand.Rand satisfies it; tests substitute a deterministic source.
type Gaussian interface {
	NormFloat64() float64
}

// Generator produces synthetic forecast series: a random walk whose step size
// scales with the current price, paired with a decaying confidence schedule.
type Generator struct {
	rng Gaussian
	now func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the time source used for forecast dates.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator drawing perturbations from rng.
func NewGenerator(rng Gaussian, opts ...GeneratorOption) *Generator {
	g := &Generator{rng: rng, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one forecast point per day starting tomorrow. Each day's
// price perturbation is drawn with stddev proportional to the current base
// price, and the unrounded predicted price is carried forward as the next base;
// rounding is display-only. Any symbol other than SENSEX starts from the
// NIFTY50 base price.
func (g *Generator) Generate(symbol string, days int, model string) []models.ForecastPoint {
	basePrice := niftyBasePrice
	if symbol == SymbolSensex {
		basePrice = sensexBasePrice
	}

	if days <= 0 {
		return []models.ForecastPoint{}
	}

	now := g.now()
	points := make([]models.ForecastPoint, 0, days)
	for i := 0; i < days; i++ {
		perturbation := g.rng.NormFloat64() * (basePrice * dailyVolatility)
		predicted := basePrice + perturbation

		confidence := maxConfidence - float64(i)*confidenceDecay
		if confidence < minConfidence {
			confidence = minConfidence
		}

		points = append(points, models.ForecastPoint{
			Date:           now.AddDate(0, 0, i+1),
			PredictedPrice: round2(predicted),
			Confidence:     round3(confidence),
			UpperBound:     round2(predicted * (1 + boundSpreadRatio)),
			LowerBound:     round2(predicted * (1 - boundSpreadRatio)),
		})

		basePrice = predicted
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
