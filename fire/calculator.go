/*
calculator.go - The month-by-month compounding simulation

PURPOSE:
  Runs the core FIRE simulation: each month add savings, apply interest on
  the running nominal balance, deflate by cumulative inflation, and stop when
  the real balance reaches the target or the safety cap is hit.

STOP CRITERION:
  The simulation compares the inflation-adjusted ("real") balance against the
  target. With zero inflation the real and nominal balances are identical.

SAFETY CAP:
  The loop is bounded by MaxMonths (default two centuries of months) so a
  zero, negative, or otherwise non-convergent growth configuration always
  terminates. Hitting the cap resolves as infeasible, never as an error.

PRECISION:
  The running balance stays in decimal for the whole loop. Interest is
  rounded to cents per month; the float rate is converted to a decimal
  factor exactly once.

SEE ALSO:
  - types.go: Input/Result shapes and the infeasibility convention
  - stats/: Closed-form target solve for pure-growth scenarios
*/
package fire

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
)

// =============================================================================
// CALCULATOR
// =============================================================================

// DefaultMaxMonths bounds the simulation loop (2400 months = 200 years).
const DefaultMaxMonths = 2400

// Calculator runs FIRE simulations. The zero value is not usable; construct
// with NewCalculator or set MaxMonths explicitly.
type Calculator struct {
	// MaxMonths is the upper iteration bound of every simulation loop.
	MaxMonths int
}

// NewCalculator returns a calculator with the default safety cap.
func NewCalculator() *Calculator {
	return &Calculator{MaxMonths: DefaultMaxMonths}
}

// =============================================================================
// SIMULATION
// =============================================================================

// Calculate runs one simulation and derives the three outlook scenarios.
func (c *Calculator) Calculate(in Input) (*Result, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	res := &Result{
		TargetAssets: fin.RoundMoney(in.TargetAssets),
		Scenarios:    c.outlookScenarios(in),
	}

	switch {
	case in.CurrentAssets.GreaterThanOrEqual(in.TargetAssets):
		res.MonthsToFI = 0
		res.Feasible = true
		res.Message = "target already met"

	case !in.MonthlySavings.IsPositive():
		res.MonthsToFI = MonthsInfeasible
		res.Feasible = false
		res.Message = "target not reachable: monthly savings must be positive"

	default:
		months, timeline := c.simulate(in, true)
		if months == MonthsInfeasible {
			res.MonthsToFI = MonthsInfeasible
			res.Feasible = false
			res.Message = "target not reachable within the simulation horizon"
			break
		}
		res.MonthsToFI = months
		res.Feasible = true
		res.Timeline = timeline
		res.Message = fmt.Sprintf("target of %s reachable in %d months",
			res.TargetAssets.StringFixed(2), months)
	}

	return res, nil
}

// simulate runs the compounding loop and returns the month the real balance
// first reaches the target, or MonthsInfeasible when the cap is exhausted.
// The timeline is only recorded (and only returned) on success.
func (c *Calculator) simulate(in Input, record bool) (int, []TimelinePoint) {
	monthlyRate := fin.MonthlyRateFromAnnual(in.AnnualReturnRate)
	monthlyInflation := fin.MonthlyRateFromAnnual(in.InflationRate)

	rate := decimal.NewFromFloat(monthlyRate)
	inflationFactor := fin.GrowthFactor(monthlyInflation)

	balance := in.CurrentAssets
	deflator := decimal.New(1, 0)

	var timeline []TimelinePoint
	for month := 1; month <= c.MaxMonths; month++ {
		balance = balance.Add(in.MonthlySavings)
		interest := fin.RoundMoney(balance.Mul(rate))
		balance = balance.Add(interest)

		deflator = deflator.Mul(inflationFactor)
		real := fin.RoundMoney(balance.Div(deflator))

		if record {
			timeline = append(timeline, TimelinePoint{
				Month:           month,
				NominalAssets:   fin.RoundMoney(balance),
				RealAssets:      real,
				MonthlyInterest: interest,
			})
		}

		if real.GreaterThanOrEqual(in.TargetAssets) {
			return month, timeline
		}
	}
	return MonthsInfeasible, nil
}

// monthsFor applies the same feasibility rules as Calculate but returns only
// the months-to-target figure. Used for outlook scenarios.
func (c *Calculator) monthsFor(in Input) int {
	if in.CurrentAssets.GreaterThanOrEqual(in.TargetAssets) {
		return 0
	}
	if !in.MonthlySavings.IsPositive() {
		return MonthsInfeasible
	}
	months, _ := c.simulate(in, false)
	return months
}

// =============================================================================
// OUTLOOK SCENARIOS
// =============================================================================

func (c *Calculator) outlookScenarios(in Input) map[Outlook]OutlookResult {
	scenarios := make(map[Outlook]OutlookResult, 3)
	for _, outlook := range Outlooks() {
		scaled := in
		scaled.AnnualReturnRate = in.AnnualReturnRate * OutlookMultiplier(outlook)
		months := c.monthsFor(scaled)
		scenarios[outlook] = OutlookResult{
			Outlook:          outlook,
			AnnualReturnRate: fin.RoundRate(scaled.AnnualReturnRate, 4),
			MonthsToFI:       months,
			Feasible:         months != MonthsInfeasible,
		}
	}
	return scenarios
}

// =============================================================================
// VALIDATION
// =============================================================================

func validateInput(in Input) error {
	if in.CurrentAssets.IsNegative() {
		return fin.NewValidation("current_assets", "must be >= 0")
	}
	if !in.TargetAssets.IsPositive() {
		return fin.NewValidation("target_assets", "must be greater than zero")
	}
	if in.AnnualReturnRate < 0 {
		return fin.NewValidation("annual_return_rate", "must be >= 0")
	}
	if in.InflationRate < 0 {
		return fin.NewValidation("inflation_rate", "must be >= 0")
	}
	return nil
}
