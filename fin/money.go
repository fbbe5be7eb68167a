/*
Package fin provides shared value helpers for the FIRE projection engine.

PURPOSE:
  This package contains the small set of primitives every other package
  builds on: decimal money construction and rounding, and validation errors.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money values are decimal.Decimal, never float64, so a multi-decade
    simulation loop never accumulates binary rounding drift
  - Rates, ratios, and confidences are float64 and converted to decimal
    explicitly at the point where they touch money

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for every monetary quantity
  2. Explicit conversion: float64 rates become decimal factors in one place
  3. Fixed-point output: money rounds to 2 decimals, rates to 3-4

SEE ALSO:
  - errors.go: Validation error types
  - stats/: Ratio and rate computations (float64 domain)
*/
package fin

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY CONSTRUCTION
// =============================================================================

// MustParseDecimal parses s as a decimal, returning zero on malformed input.
// Intended for literals in configuration and tests.
func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Money builds a decimal from a float input at the engine boundary.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// MoneyInt builds a decimal from an integer amount.
func MoneyInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// =============================================================================
// ROUNDING
// =============================================================================

// MoneyPlaces is the fixed-point precision for monetary outputs.
const MoneyPlaces = 2

// RoundMoney rounds a monetary value to 2 decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RoundRate rounds a float ratio/rate to the given number of places.
func RoundRate(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// GrowthFactor converts a float monthly/annual rate into a decimal
// multiplication factor (1 + rate). This is the single conversion point
// between the float rate domain and the decimal money domain.
func GrowthFactor(rate float64) decimal.Decimal {
	return decimal.NewFromFloat(1 + rate)
}

// MonthlyRateFromAnnual derives the monthly compounding rate r such that
// (1+r)^12 = 1+annual. Returns 0 for a zero annual rate.
func MonthlyRateFromAnnual(annual float64) float64 {
	if annual == 0 {
		return 0
	}
	return math.Pow(1+annual, 1.0/12) - 1
}
