package analytics

import (
	"math"
	"strings"
	"testing"
)

func TestComputeTrendMinimumSamples(t *testing.T) {
	for _, samples := range [][]Sample{nil, {{MinutesStudied: 30, AverageScore: 55}}} {
		res := ComputeTrend(samples)
		if res.Coefficient != nil {
			t.Fatalf("coefficient should be nil for %d samples", len(samples))
		}
		if !strings.Contains(res.Interpretation, "At least two topics") {
			t.Fatalf("unexpected interpretation: %q", res.Interpretation)
		}
	}
}

func TestComputeTrendExactPearson(t *testing.T) {
	samples := []Sample{
		{MinutesStudied: 30, AverageScore: 55},
		{MinutesStudied: 90, AverageScore: 75},
		{MinutesStudied: 180, AverageScore: 95},
	}
	res := ComputeTrend(samples)
	if res.Coefficient == nil {
		t.Fatal("coefficient should be computable")
	}
	// Closed-form Pearson for these three points.
	want := 3000.0 / math.Sqrt(11400.0*800.0)
	if math.Abs(*res.Coefficient-want) > 1e-12 {
		t.Fatalf("coefficient = %v, want %v", *res.Coefficient, want)
	}
	if !strings.Contains(res.Interpretation, "strong") || !strings.Contains(res.Interpretation, "positive") {
		t.Fatalf("unexpected interpretation: %q", res.Interpretation)
	}
}

func TestComputeTrendDegenerateVariance(t *testing.T) {
	samples := []Sample{
		{MinutesStudied: 60, AverageScore: 50},
		{MinutesStudied: 60, AverageScore: 80},
		{MinutesStudied: 60, AverageScore: 20},
	}
	res := ComputeTrend(samples)
	if res.Coefficient != nil {
		t.Fatalf("zero-variance input should yield nil coefficient, got %v", *res.Coefficient)
	}
	if !strings.Contains(res.Interpretation, "At least two topics") {
		t.Fatalf("unexpected interpretation: %q", res.Interpretation)
	}
}

func TestComputeTrendNegativeDirection(t *testing.T) {
	samples := []Sample{
		{MinutesStudied: 30, AverageScore: 95},
		{MinutesStudied: 90, AverageScore: 70},
		{MinutesStudied: 180, AverageScore: 40},
	}
	res := ComputeTrend(samples)
	if res.Coefficient == nil || *res.Coefficient >= 0 {
		t.Fatalf("expected a negative coefficient, got %v", res.Coefficient)
	}
	if !strings.Contains(res.Interpretation, "negative") || !strings.Contains(res.Interpretation, "unusual") {
		t.Fatalf("unexpected interpretation: %q", res.Interpretation)
	}
}

func TestComputeTrendWeakBand(t *testing.T) {
	// Nearly flat relationship with a slight positive slope and noise.
	samples := []Sample{
		{MinutesStudied: 10, AverageScore: 70},
		{MinutesStudied: 50, AverageScore: 40},
		{MinutesStudied: 90, AverageScore: 80},
		{MinutesStudied: 130, AverageScore: 50},
		{MinutesStudied: 170, AverageScore: 75},
	}
	res := ComputeTrend(samples)
	if res.Coefficient == nil {
		t.Fatal("coefficient should be computable")
	}
	abs := math.Abs(*res.Coefficient)
	if abs < 0.1 || abs >= 0.4 {
		t.Fatalf("fixture drifted out of the weak band: %v", *res.Coefficient)
	}
	if !strings.Contains(res.Interpretation, "weak") {
		t.Fatalf("unexpected interpretation: %q", res.Interpretation)
	}
}
