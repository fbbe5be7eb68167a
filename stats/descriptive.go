/*
Package stats provides the trend and growth mathematics for the FIRE engine.

PURPOSE:
  This package contains domain-agnostic numeric building blocks: descriptive
  statistics, ordinary least squares fitting, growth-rate analysis over asset
  histories, target-solve ("how many months until X"), compound projection,
  and moving-average smoothing.

KEY CONCEPTS IN THIS FILE (descriptive.go):
  - All descriptive statistics operate in the float64 ratio domain
  - Monetary inputs are converted once, at the call boundary
  - Percentile uses linear interpolation between closest ranks

DESIGN PRINCIPLES:
  1. Pure functions: no state, no clock, no I/O
  2. Validation first: malformed input fails before any partial result
  3. Sample statistics: standard deviation uses the n-1 denominator

SEE ALSO:
  - regression.go: OLS fit and R-squared
  - growth.go: Growth-rate analysis and projections
*/
package stats

import (
	"math"
	"sort"

	"github.com/warp/fire-engine/fin"
)

// =============================================================================
// DESCRIPTIVE STATISTICS - float64 ratio domain
// =============================================================================

// Mean returns the arithmetic mean of values. Zero for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// Zero when fewer than two values are supplied.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// CoefficientOfVariation returns stdev / |mean|, a unit-less dispersion
// measure. Fewer than two values is perfectly stable (cv = 0). A zero mean
// cannot be divided and fails validation.
func CoefficientOfVariation(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, nil
	}
	mean := Mean(values)
	if mean == 0 {
		return 0, fin.NewValidation("values", "cannot divide: mean is zero")
	}
	return SampleStdDev(values) / math.Abs(mean), nil
}

// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between closest ranks. Zero for an empty slice.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return values[0]
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(n-1)
	lower := int(math.Floor(rank))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
