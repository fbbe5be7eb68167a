/*
Package fire simulates month-by-month compounding toward a savings target.

PURPOSE:
  Answers "how many months until financial independence" for a household:
  starting assets plus monthly savings, compounded at a monthly rate derived
  from the annual return, deflated by inflation, until the inflation-adjusted
  balance reaches the target.

KEY CONCEPTS IN THIS FILE (types.go):
  - Input: the five knobs of a simulation run
  - TimelinePoint: one simulated month (nominal, real, interest earned)
  - Outlook: closed enum of the three auxiliary growth scenarios
  - Result: immutable outcome of one simulation run

INFEASIBILITY:
  Not reaching the target is a normal outcome, not an error. It is reported
  in-band: MonthsToFI = -1 and Feasible = false, with an explanatory message
  the caller can render directly.

SEE ALSO:
  - calculator.go: The simulation loop
  - scenario/: What-if interventions on top of a baseline run
*/
package fire

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SIMULATION INPUT
// =============================================================================

// Input holds the parameters of one simulation run. Monetary fields are
// decimal; rates are annual decimals (0.05 = 5%).
type Input struct {
	CurrentAssets    decimal.Decimal
	MonthlySavings   decimal.Decimal
	TargetAssets     decimal.Decimal
	AnnualReturnRate float64
	InflationRate    float64
}

// =============================================================================
// TIMELINE
// =============================================================================

// TimelinePoint is the state after one simulated month.
type TimelinePoint struct {
	Month           int             `json:"month"`
	NominalAssets   decimal.Decimal `json:"nominal_assets"`
	RealAssets      decimal.Decimal `json:"real_assets"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
}

// =============================================================================
// OUTLOOK SCENARIOS - fixed growth multipliers on the effective rate
// =============================================================================

// Outlook identifies one of the three auxiliary growth scenarios.
type Outlook string

const (
	OutlookPessimistic Outlook = "pessimistic"
	OutlookNeutral     Outlook = "neutral"
	OutlookOptimistic  Outlook = "optimistic"
)

// OutlookMultiplier returns the growth multiplier applied to the effective
// annual rate for the given outlook.
func OutlookMultiplier(o Outlook) float64 {
	switch o {
	case OutlookPessimistic:
		return 0.7
	case OutlookOptimistic:
		return 1.3
	default:
		return 1.0
	}
}

// Outlooks lists the three scenarios in pessimistic-to-optimistic order.
func Outlooks() []Outlook {
	return []Outlook{OutlookPessimistic, OutlookNeutral, OutlookOptimistic}
}

// OutlookResult is the simplified months-to-target outcome of one outlook.
type OutlookResult struct {
	Outlook          Outlook `json:"outlook"`
	AnnualReturnRate float64 `json:"annual_return_rate"`
	MonthsToFI       int     `json:"months_to_fi"`
	Feasible         bool    `json:"feasible"`
}

// =============================================================================
// RESULT
// =============================================================================

// MonthsInfeasible marks an unreachable target in MonthsToFI fields.
const MonthsInfeasible = -1

// Result is the immutable outcome of one simulation run.
type Result struct {
	TargetAssets decimal.Decimal           `json:"target_assets"`
	MonthsToFI   int                       `json:"months_to_fi"`
	Feasible     bool                      `json:"feasible"`
	Message      string                    `json:"message"`
	Timeline     []TimelinePoint           `json:"achieved_assets_timeline"`
	Scenarios    map[Outlook]OutlookResult `json:"scenarios"`
}
