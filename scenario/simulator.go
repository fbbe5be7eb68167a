/*
simulator.go - Intervention simulation and ROI ranking

PURPOSE:
  Reruns the FIRE calculator once per intervention with perturbed savings and
  expenses, derives months saved versus the cached baseline, and ranks the
  interventions by ROI.

EDGE CASES:
  - An expense cut above 100% would drive the monthly expense negative. That
    intervention is reported as not achievable with a warning message; it
    never raises an error.
  - A baseline that cannot reach the target at all has OriginalMonthsToFI of
    -1; months saved is floored at zero, so no intervention claims credit
    against an infinite horizon.

ORDERING:
  Results are sorted by ROI descending with a stable sort, so ties keep the
  caller's input order.

SEE ALSO:
  - fire/calculator.go: The underlying simulation
  - defaults.go: Canned interventions
*/
package scenario

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
	"github.com/warp/fire-engine/fire"
)

// roiPlaces is the fixed-point precision of ROI scores.
const roiPlaces = 4

// =============================================================================
// SIMULATOR
// =============================================================================

// Simulator evaluates interventions against one cached baseline run.
type Simulator struct {
	baseline       Baseline
	calc           *fire.Calculator
	originalMonths int
}

// NewSimulator runs the baseline once and caches its months-to-FI.
// A nil calculator gets the default safety cap.
func NewSimulator(baseline Baseline, calc *fire.Calculator) (*Simulator, error) {
	if baseline.MonthlyExpense.IsNegative() {
		return nil, fin.NewValidation("monthly_expense", "must be >= 0")
	}
	if calc == nil {
		calc = fire.NewCalculator()
	}

	base, err := calc.Calculate(baseline.fireInput())
	if err != nil {
		return nil, err
	}

	return &Simulator{
		baseline:       baseline,
		calc:           calc,
		originalMonths: base.MonthsToFI,
	}, nil
}

// OriginalMonthsToFI returns the cached baseline months-to-FI
// (fire.MonthsInfeasible when the baseline cannot reach the target).
func (s *Simulator) OriginalMonthsToFI() int {
	return s.originalMonths
}

// =============================================================================
// SIMULATION
// =============================================================================

// Simulate evaluates each intervention independently against the baseline
// and returns the results sorted by ROI descending (stable on ties).
func (s *Simulator) Simulate(configs []Config) ([]Result, error) {
	results := make([]Result, 0, len(configs))
	for _, cfg := range configs {
		res, err := s.simulateOne(cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ROIScore.GreaterThan(results[j].ROIScore)
	})
	return results, nil
}

func (s *Simulator) simulateOne(cfg Config) (Result, error) {
	res := Result{
		ScenarioName:       cfg.Name,
		OriginalMonthsToFI: s.originalMonths,
		ScenarioMonthsToFI: fire.MonthsInfeasible,
		DifficultyScore:    cfg.DifficultyScore,
		ROIScore:           decimal.Zero,
	}

	hundred := decimal.NewFromInt(100)
	reduction := s.baseline.MonthlyExpense.Mul(cfg.ExpenseReductionPct).Div(hundred)
	newExpense := s.baseline.MonthlyExpense.Sub(reduction)

	// Over-100% cuts are a config mistake, reported in-band.
	if newExpense.IsNegative() {
		res.Achievable = false
		res.Message = fmt.Sprintf(
			"expense reduction of %s%% exceeds the monthly expense; scenario not achievable",
			cfg.ExpenseReductionPct.String())
		return res, nil
	}

	in := s.baseline.fireInput()
	in.MonthlySavings = in.MonthlySavings.Add(cfg.IncomeIncrease).Add(reduction)

	run, err := s.calc.Calculate(in)
	if err != nil {
		return Result{}, err
	}

	res.ScenarioMonthsToFI = run.MonthsToFI
	res.Achievable = run.Feasible

	if run.Feasible {
		saved := s.originalMonths - run.MonthsToFI
		if saved < 0 {
			saved = 0
		}
		res.MonthsSaved = saved
		res.ROIScore = roiScore(saved, cfg.DifficultyScore)
		res.Message = fmt.Sprintf("saves %d months versus the baseline", saved)
	} else {
		res.Message = run.Message
	}
	return res, nil
}

// roiScore divides months saved by difficulty in decimal arithmetic.
// Non-positive difficulty scores zero.
func roiScore(monthsSaved int, difficulty decimal.Decimal) decimal.Decimal {
	if !difficulty.IsPositive() {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(monthsSaved)).Div(difficulty).Round(roiPlaces)
}

// =============================================================================
// RECOMMENDATION
// =============================================================================

// Recommend returns the achievable result with the highest ROI, or nil when
// no result is achievable. Earlier results win ties.
func (s *Simulator) Recommend(results []Result) *Result {
	var best *Result
	for i := range results {
		if !results[i].Achievable {
			continue
		}
		if best == nil || results[i].ROIScore.GreaterThan(best.ROIScore) {
			best = &results[i]
		}
	}
	return best
}
