/*
Package scenario evaluates what-if interventions against a FIRE baseline.

PURPOSE:
  Given a household baseline (assets, savings, expenses, rates), score a set
  of named interventions — cut an expense share, add side income, or both —
  by how many months each shaves off the road to the target, relative to how
  hard it is to pull off.

KEY CONCEPTS IN THIS FILE (types.go):
  - Baseline: the household inputs shared by every intervention
  - Config: one intervention (expense cut %, income increase, difficulty)
  - Result: the intervention's outcome, including its ROI score

ROI SCORE:
  months saved / difficulty. A free intervention that saves a year beats an
  exhausting one that saves a year. Zero difficulty scores zero rather than
  dividing by zero.

SEE ALSO:
  - simulator.go: Simulation and ranking
  - defaults.go: The canned intervention set
*/
package scenario

import (
	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fire"
)

// =============================================================================
// BASELINE - the household as it is today
// =============================================================================

// Baseline holds the unmodified household inputs.
type Baseline struct {
	CurrentAssets    decimal.Decimal
	MonthlySavings   decimal.Decimal
	TargetAssets     decimal.Decimal
	MonthlyExpense   decimal.Decimal
	AnnualReturnRate float64
	InflationRate    float64
}

// fireInput maps the baseline onto a simulation input.
func (b Baseline) fireInput() fire.Input {
	return fire.Input{
		CurrentAssets:    b.CurrentAssets,
		MonthlySavings:   b.MonthlySavings,
		TargetAssets:     b.TargetAssets,
		AnnualReturnRate: b.AnnualReturnRate,
		InflationRate:    b.InflationRate,
	}
}

// =============================================================================
// INTERVENTION CONFIG AND RESULT
// =============================================================================

// Config describes one intervention to evaluate.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// ExpenseReductionPct cuts the monthly expense by this percentage;
	// the freed money is added back into monthly savings.
	ExpenseReductionPct decimal.Decimal `json:"expense_reduction_pct"`
	// IncomeIncrease is added to monthly savings directly.
	IncomeIncrease decimal.Decimal `json:"income_increase"`
	// DifficultyScore is a subjective effort score; must be positive for
	// the intervention to earn a non-zero ROI.
	DifficultyScore decimal.Decimal `json:"difficulty_score"`
}

// Result is the evaluated outcome of one intervention.
type Result struct {
	ScenarioName       string          `json:"scenario_name"`
	OriginalMonthsToFI int             `json:"original_months_to_fi"`
	ScenarioMonthsToFI int             `json:"scenario_months_to_fi"`
	MonthsSaved        int             `json:"months_saved"`
	DifficultyScore    decimal.Decimal `json:"difficulty_score"`
	ROIScore           decimal.Decimal `json:"roi_score"`
	Achievable         bool            `json:"achievable"`
	Message            string          `json:"message"`
}
