/*
growth.go - Growth-rate analysis and compound projections

PURPOSE:
  Fits linear growth to an asset history to produce a monthly/annual growth
  rate with a confidence score, projects compound growth forward, and solves
  for the number of months until a target balance is reached.

METHODS:
  MethodRegression:
    Ordinary least squares of value vs. month index. The monthly growth rate
    is slope relative to the first observation; confidence is the fit's
    R-squared.

  MethodAverage:
    Average of month-over-month relative deltas, skipping steps where the
    prior value is zero. Confidence is 1 minus the dispersion of the deltas,
    floored at zero.

TARGET SOLVE:
  months = log(target/current) / log(1 + rate)
  Already-met targets solve to 0 months. A non-positive rate with an unmet
  target is unreachable and reported in-band as nil, not as an error.

SEE ALSO:
  - descriptive.go: Mean, stdev, coefficient of variation
  - regression.go: OLS fit
  - fire/: Month-by-month simulation (savings + compounding)
*/
package stats

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
)

// =============================================================================
// GROWTH RATE ANALYSIS
// =============================================================================

// Method selects how the monthly growth rate is derived from a history.
type Method string

const (
	MethodRegression Method = "regression"
	MethodAverage    Method = "average"
)

// MinGrowthDataPoints is the smallest history a growth fit accepts.
const MinGrowthDataPoints = 3

// RatePlaces is the fixed-point precision for rates and confidences.
const RatePlaces = 4

// GrowthRateAnalysis is the immutable outcome of fitting an asset history.
type GrowthRateAnalysis struct {
	MonthlyGrowthPct     float64 `json:"monthly_growth_rate"`
	MonthlyGrowthDecimal float64 `json:"growth_rate_decimal"`
	AnnualGrowthPct      float64 `json:"annual_growth_rate"`
	Confidence           float64 `json:"confidence"`
	DataPoints           int     `json:"data_points"`
	RSquared             float64 `json:"r_squared"`
}

// GrowthFromHistory fits a monthly growth rate to an ordered asset history.
// Requires at least MinGrowthDataPoints observations.
func GrowthFromHistory(values []decimal.Decimal, method Method) (*GrowthRateAnalysis, error) {
	if len(values) < MinGrowthDataPoints {
		return nil, fin.NewValidation("values", "requires at least 3 data points")
	}

	series := make([]float64, len(values))
	for i, v := range values {
		series[i] = v.InexactFloat64()
	}

	switch method {
	case MethodRegression:
		return growthByRegression(series), nil
	case MethodAverage:
		return growthByAverage(series), nil
	default:
		return nil, fin.NewValidation("method", "must be \"regression\" or \"average\"")
	}
}

func growthByRegression(series []float64) *GrowthRateAnalysis {
	fit := FitOLS(series)

	// Slope relative to the starting balance. A zero start has no
	// meaningful relative growth.
	var monthly float64
	if series[0] != 0 {
		monthly = fit.Slope / series[0]
	}

	return newGrowthAnalysis(monthly, fit.RSquared, len(series), fit.RSquared)
}

func growthByAverage(series []float64) *GrowthRateAnalysis {
	var deltas []float64
	for i := 1; i < len(series); i++ {
		prior := series[i-1]
		if prior == 0 {
			continue
		}
		deltas = append(deltas, (series[i]-prior)/prior)
	}
	if len(deltas) == 0 {
		return newGrowthAnalysis(0, 0, len(series), 0)
	}

	monthly := Mean(deltas)

	confidence := 0.0
	if cv, err := CoefficientOfVariation(deltas); err == nil {
		confidence = math.Max(0, 1-cv)
	}

	return newGrowthAnalysis(monthly, confidence, len(series), 0)
}

func newGrowthAnalysis(monthly, confidence float64, points int, r2 float64) *GrowthRateAnalysis {
	annual := math.Pow(1+monthly, 12) - 1
	return &GrowthRateAnalysis{
		MonthlyGrowthPct:     fin.RoundRate(monthly*100, RatePlaces),
		MonthlyGrowthDecimal: monthly,
		AnnualGrowthPct:      fin.RoundRate(annual*100, RatePlaces),
		Confidence:           fin.RoundRate(confidence, RatePlaces),
		DataPoints:           points,
		RSquared:             fin.RoundRate(r2, RatePlaces),
	}
}

// =============================================================================
// TARGET SOLVE AND PROJECTION
// =============================================================================

// MonthsToTarget solves for the months of compound growth at monthlyRate
// until current reaches target. Returns a pointer to 0 when the target is
// already met, and nil when the target is unreachable (non-positive rate,
// or nothing to compound). Negative amounts fail validation.
func MonthsToTarget(current, target decimal.Decimal, monthlyRate float64) (*float64, error) {
	if current.IsNegative() {
		return nil, fin.NewValidation("current_assets", "must be >= 0")
	}
	if target.IsNegative() {
		return nil, fin.NewValidation("target_assets", "must be >= 0")
	}
	if target.LessThanOrEqual(current) {
		zero := 0.0
		return &zero, nil
	}
	if monthlyRate <= 0 || current.IsZero() {
		return nil, nil
	}

	ratio := target.Div(current).InexactFloat64()
	months := fin.RoundRate(math.Log(ratio)/math.Log(1+monthlyRate), 2)
	return &months, nil
}

// ProjectAssets compounds current forward by monthlyRate over months,
// rounded to 2 decimals. Negative inputs fail validation.
func ProjectAssets(current decimal.Decimal, monthlyRate float64, months int) (decimal.Decimal, error) {
	if current.IsNegative() {
		return decimal.Zero, fin.NewValidation("current_assets", "must be >= 0")
	}
	if months < 0 {
		return decimal.Zero, fin.NewValidation("months", "must be >= 0")
	}

	factor := fin.GrowthFactor(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	return fin.RoundMoney(current.Mul(factor)), nil
}

// =============================================================================
// PROJECTION SCENARIO
// =============================================================================

// ProjectionScenario is one named growth trajectory toward a target.
type ProjectionScenario struct {
	ScenarioName       string          `json:"scenario_name"`
	GrowthRate         float64         `json:"growth_rate"`
	CurrentAssets      decimal.Decimal `json:"current_assets"`
	TargetAssets       decimal.Decimal `json:"target_assets"`
	MonthsToFI         *float64        `json:"months_to_fi"`
	ProjectedAssets12M decimal.Decimal `json:"projected_assets_12m"`
	ProjectedAssets60M decimal.Decimal `json:"projected_assets_60m"`
	IsAchievable       bool            `json:"is_achievable"`
}

// NewProjectionScenario composes the target solve with 12- and 60-month
// projections at the given monthly growth rate.
func NewProjectionScenario(name string, current, target decimal.Decimal, monthlyRate float64) (*ProjectionScenario, error) {
	months, err := MonthsToTarget(current, target, monthlyRate)
	if err != nil {
		return nil, err
	}
	at12, err := ProjectAssets(current, monthlyRate, 12)
	if err != nil {
		return nil, err
	}
	at60, err := ProjectAssets(current, monthlyRate, 60)
	if err != nil {
		return nil, err
	}

	return &ProjectionScenario{
		ScenarioName:       name,
		GrowthRate:         monthlyRate,
		CurrentAssets:      current,
		TargetAssets:       target,
		MonthsToFI:         months,
		ProjectedAssets12M: at12,
		ProjectedAssets60M: at60,
		IsAchievable:       months != nil,
	}, nil
}

// =============================================================================
// MOVING AVERAGE
// =============================================================================

// MovingAverage returns the simple moving average of values with the given
// window. The result has the same length as the input: positions before the
// window fills are padded with the first raw value.
func MovingAverage(values []decimal.Decimal, window int) ([]decimal.Decimal, error) {
	if window <= 0 {
		return nil, fin.NewValidation("window", "must be > 0")
	}
	if window > len(values) {
		return nil, fin.NewValidation("window", "exceeds series length")
	}

	out := make([]decimal.Decimal, len(values))
	size := decimal.NewFromInt(int64(window))
	for i := range values {
		if i < window-1 {
			out[i] = values[0]
			continue
		}
		sum := decimal.Zero
		for j := i - window + 1; j <= i; j++ {
			sum = sum.Add(values[j])
		}
		out[i] = fin.RoundMoney(sum.Div(size))
	}
	return out, nil
}
