package analytics

import (
	"fmt"
	"math"
)

// Sample pairs total minutes studied for one topic with the average quiz
// score reached on that topic.
type Sample struct {
	MinutesStudied float64
	AverageScore   float64
}

// TrendResult is the outcome of the study-effectiveness correlation. A nil
// coefficient means "not computable" (too few samples or degenerate data);
// the interpretation always explains the situation in plain language, so the
// result is presentable as-is.
type TrendResult struct {
	Coefficient    *float64 `json:"correlation_coefficient"`
	Interpretation string   `json:"interpretation"`
}

const minTrendSamples = 2

const insufficientSamplesMsg = "At least two topics with both logged study time and quiz scores are required to compute a correlation."

// ComputeTrend computes Pearson's r between minutes studied and average quiz
// score across topics and classifies the result. It never fails: degenerate
// inputs (fewer than two samples, zero variance, non-finite arithmetic)
// collapse to a nil coefficient with the minimum-sample interpretation.
func ComputeTrend(samples []Sample) TrendResult {
	if len(samples) < minTrendSamples {
		return TrendResult{Interpretation: insufficientSamplesMsg}
	}
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.MinutesStudied
		ys[i] = s.AverageScore
	}
	r, ok := pearson(xs, ys)
	if !ok {
		return TrendResult{Interpretation: insufficientSamplesMsg}
	}
	return TrendResult{Coefficient: &r, Interpretation: interpretCoefficient(r)}
}

// pearson computes the Pearson correlation coefficient over two equal-length
// series. The second return value is false when the coefficient is undefined
// (a series with zero variance) or the arithmetic produced a non-finite
// value.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, false
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	r := cov / math.Sqrt(varX*varY)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func interpretCoefficient(r float64) string {
	abs := math.Abs(r)

	var strength string
	switch {
	case abs >= 0.7:
		strength = "strong"
	case abs >= 0.4:
		strength = "moderate"
	case abs >= 0.1:
		strength = "weak"
	default:
		return "There is no significant correlation between study time and quiz scores."
	}

	if r > 0 {
		return fmt.Sprintf("There is a %s positive correlation. This suggests that, in general, the more time you spend studying a topic, the better your quiz scores tend to be.", strength)
	}
	return fmt.Sprintf("There is a %s negative correlation. This is unusual and may indicate that study time is not translating into results, or that the quizzes assess different knowledge.", strength)
}
