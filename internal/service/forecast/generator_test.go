package forecast

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// zeroGauss draws nothing: every perturbation is zero, so the walk stays at the
// base price and all rounded fields are exact.
type zeroGauss struct{}

func (zeroGauss) NormFloat64() float64 { return 0 }

func fixedClock() func() time.Time {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestGenerateFlatWalkSensex(t *testing.T) {
	g := NewGenerator(zeroGauss{}, WithClock(fixedClock()))
	points := g.Generate("SENSEX", 3, "LSTM")
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		if p.PredictedPrice != 72500 {
			t.Fatalf("point %d: expected 72500, got %v", i, p.PredictedPrice)
		}
		if p.UpperBound != 76125 {
			t.Fatalf("point %d: expected upper 76125, got %v", i, p.UpperBound)
		}
		if p.LowerBound != 68875 {
			t.Fatalf("point %d: expected lower 68875, got %v", i, p.LowerBound)
		}
	}
}

func TestGenerateNonSensexFallsBackToNiftyBase(t *testing.T) {
	g := NewGenerator(zeroGauss{}, WithClock(fixedClock()))
	for _, symbol := range []string{"NIFTY50", "DOWJONES"} {
		points := g.Generate(symbol, 1, "LSTM")
		if points[0].PredictedPrice != 21850 {
			t.Fatalf("%s: expected 21850, got %v", symbol, points[0].PredictedPrice)
		}
	}
}

func TestGenerateConfidenceSchedule(t *testing.T) {
	g := NewGenerator(zeroGauss{}, WithClock(fixedClock()))
	points := g.Generate("SENSEX", 40, "LSTM")
	for i, p := range points {
		want := 0.95 - 0.01*float64(i)
		if want < 0.6 {
			want = 0.6
		}
		want = math.Round(want*1000) / 1000
		if p.Confidence != want {
			t.Fatalf("point %d: expected confidence %v, got %v", i, want, p.Confidence)
		}
	}
	// day 35 onward is floored
	if points[35].Confidence != 0.6 || points[39].Confidence != 0.6 {
		t.Fatalf("expected floor at 0.6, got %v / %v", points[35].Confidence, points[39].Confidence)
	}
}

func TestGenerateDatesStartTomorrow(t *testing.T) {
	clock := fixedClock()
	g := NewGenerator(zeroGauss{}, WithClock(clock))
	points := g.Generate("NIFTY50", 5, "ARIMA")
	now := clock()
	for i, p := range points {
		want := now.AddDate(0, 0, i+1)
		if !p.Date.Equal(want) {
			t.Fatalf("point %d: expected date %v, got %v", i, want, p.Date)
		}
	}
}

func TestGenerateInvariants(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)), WithClock(fixedClock()))
	points := g.Generate("SENSEX", 30, "LSTM")
	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}
	prev := 1.0
	for i, p := range points {
		if p.LowerBound > p.PredictedPrice || p.PredictedPrice > p.UpperBound {
			t.Fatalf("point %d: bounds do not bracket price: %v %v %v", i, p.LowerBound, p.PredictedPrice, p.UpperBound)
		}
		if p.Confidence > prev {
			t.Fatalf("point %d: confidence increased %v -> %v", i, prev, p.Confidence)
		}
		if p.Confidence < 0.6 {
			t.Fatalf("point %d: confidence below floor: %v", i, p.Confidence)
		}
		prev = p.Confidence
	}
}

func TestGeneratePathDependence(t *testing.T) {
	// Same seed twice must reproduce the series; the walk must actually move.
	a := NewGenerator(rand.New(rand.NewSource(42)), WithClock(fixedClock())).Generate("SENSEX", 10, "LSTM")
	b := NewGenerator(rand.New(rand.NewSource(42)), WithClock(fixedClock())).Generate("SENSEX", 10, "LSTM")
	moved := false
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d: same seed produced different output", i)
		}
		if a[i].PredictedPrice != 72500 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("expected the walk to move off the base price")
	}
}

func TestGenerateNonPositiveDays(t *testing.T) {
	g := NewGenerator(zeroGauss{}, WithClock(fixedClock()))
	if got := g.Generate("SENSEX", 0, "LSTM"); len(got) != 0 {
		t.Fatalf("expected empty series for 0 days, got %d", len(got))
	}
	if got := g.Generate("SENSEX", -3, "LSTM"); len(got) != 0 {
		t.Fatalf("expected empty series for negative days, got %d", len(got))
	}
}
