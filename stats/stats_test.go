package stats_test

import (
	"math"
	"testing"

	"github.com/warp/fire-engine/fin"
	"github.com/warp/fire-engine/stats"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func almost(t *testing.T, got, want, tolerance float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

// =============================================================================
// DESCRIPTIVE STATISTICS
// =============================================================================

func TestMean(t *testing.T) {
	almost(t, stats.Mean([]float64{1, 2, 3, 4}), 2.5, 1e-9, "mean")
	almost(t, stats.Mean(nil), 0, 1e-9, "empty mean")
}

func TestSampleStdDev(t *testing.T) {
	// Sample stdev (n-1) of {2,4,4,4,5,5,7,9} is ~2.138
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	almost(t, stats.SampleStdDev(values), 2.1381, 1e-3, "stdev")

	if stats.SampleStdDev([]float64{5}) != 0 {
		t.Error("single value has no dispersion")
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	cv, err := stats.CoefficientOfVariation([]float64{10, 10, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	almost(t, cv, 0, 1e-9, "cv of constant series")
}

func TestCoefficientOfVariation_ZeroMeanFails(t *testing.T) {
	_, err := stats.CoefficientOfVariation([]float64{-100, 100})
	if !fin.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	values := []float64{28000, 30000, 31000, 35000, 42000}
	almost(t, stats.Percentile(values, 25), 30000, 1e-9, "q1")
	almost(t, stats.Percentile(values, 75), 35000, 1e-9, "q3")
	almost(t, stats.Percentile(values, 50), 31000, 1e-9, "median")
	almost(t, stats.Percentile(values, 100), 42000, 1e-9, "max")

	// Interpolated rank between two observations
	almost(t, stats.Percentile([]float64{10, 20}, 50), 15, 1e-9, "midpoint")
}

// =============================================================================
// OLS REGRESSION
// =============================================================================

func TestFitOLS_PerfectLine(t *testing.T) {
	fit := stats.FitOLS([]float64{100, 110, 120, 130})

	almost(t, fit.Slope, 10, 1e-9, "slope")
	almost(t, fit.Intercept, 100, 1e-9, "intercept")
	almost(t, fit.RSquared, 1, 1e-9, "r-squared")
}

func TestFitOLS_ConstantSeries(t *testing.T) {
	// A flat series fits its own mean exactly.
	fit := stats.FitOLS([]float64{50, 50, 50})

	almost(t, fit.Slope, 0, 1e-9, "slope")
	almost(t, fit.RSquared, 1, 1e-9, "r-squared")
}

func TestFitOLS_NoisyLine(t *testing.T) {
	fit := stats.FitOLS([]float64{100, 110, 121})

	almost(t, fit.Slope, 10.5, 1e-9, "slope")
	if fit.RSquared <= 0.99 || fit.RSquared > 1 {
		t.Errorf("expected near-perfect fit, got r2=%v", fit.RSquared)
	}
}
