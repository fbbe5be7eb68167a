package scenario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
	"github.com/warp/fire-engine/fire"
	"github.com/warp/fire-engine/scenario"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func baseBaseline() scenario.Baseline {
	return scenario.Baseline{
		CurrentAssets:    d(1_000_000),
		MonthlySavings:   d(100_000),
		TargetAssets:     d(3_000_000),
		MonthlyExpense:   d(300_000),
		AnnualReturnRate: 0.05,
	}
}

func newSimulator(t *testing.T) *scenario.Simulator {
	t.Helper()
	sim, err := scenario.NewSimulator(baseBaseline(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sim
}

func cfg(name string, reductionPct, income, difficulty string) scenario.Config {
	return scenario.Config{
		Name:                name,
		ExpenseReductionPct: fin.MustParseDecimal(reductionPct),
		IncomeIncrease:      fin.MustParseDecimal(income),
		DifficultyScore:     fin.MustParseDecimal(difficulty),
	}
}

// =============================================================================
// SIMULATION OUTCOMES
// =============================================================================

func TestSimulate_ExpenseCutShortensHorizon(t *testing.T) {
	// GIVEN: a feasible baseline
	// WHEN: cutting 20% of a 300k monthly expense (60k extra savings)
	// THEN: the scenario reaches the target sooner and reports months saved

	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{cfg("cut-20", "20", "0", "4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	res := results[0]
	if !res.Achievable {
		t.Fatal("expected an achievable scenario")
	}
	if res.ScenarioMonthsToFI >= res.OriginalMonthsToFI {
		t.Errorf("extra savings should shorten the horizon: %d vs %d",
			res.ScenarioMonthsToFI, res.OriginalMonthsToFI)
	}
	if res.MonthsSaved != res.OriginalMonthsToFI-res.ScenarioMonthsToFI {
		t.Errorf("months saved mismatch: %d", res.MonthsSaved)
	}
	if res.Message == "" {
		t.Error("result should carry a message")
	}
}

func TestSimulate_Overcut_IsWarningNotError(t *testing.T) {
	// A 150% expense reduction would drive the expense negative.
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{cfg("overcut", "150", "0", "2")})
	if err != nil {
		t.Fatalf("an over-100%% cut must not raise, got %v", err)
	}

	res := results[0]
	if res.Achievable {
		t.Error("over-100% cut cannot be achievable")
	}
	if res.Message == "" {
		t.Error("over-100% cut must carry a warning message")
	}
	if res.ScenarioMonthsToFI != fire.MonthsInfeasible {
		t.Errorf("expected in-band infeasibility, got %d", res.ScenarioMonthsToFI)
	}
	if !res.ROIScore.IsZero() {
		t.Errorf("unachievable scenario earns no ROI, got %s", res.ROIScore)
	}
}

func TestSimulate_ZeroDifficultyScoresZeroROI(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{cfg("free-lunch", "20", "0", "0")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].ROIScore.IsZero() {
		t.Errorf("zero difficulty must not divide, got ROI %s", results[0].ROIScore)
	}
}

func TestSimulate_InfeasibleBaselineClaimsNoSavings(t *testing.T) {
	// GIVEN: a baseline that cannot reach the target at all
	// THEN: a feasible scenario saves 0 months against the infinite horizon

	b := baseBaseline()
	b.MonthlySavings = decimal.Zero
	sim, err := scenario.NewSimulator(b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.OriginalMonthsToFI() != fire.MonthsInfeasible {
		t.Fatalf("baseline should be infeasible, got %d", sim.OriginalMonthsToFI())
	}

	results, err := sim.Simulate([]scenario.Config{cfg("cut-20", "20", "0", "4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := results[0]
	if !res.Achievable {
		t.Fatal("the cut frees savings, so the scenario itself is achievable")
	}
	if res.MonthsSaved != 0 {
		t.Errorf("no credit against an infinite horizon, got %d months saved", res.MonthsSaved)
	}
}

// =============================================================================
// ORDERING AND RECOMMENDATION
// =============================================================================

func TestSimulate_SortsByROIDescending(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{
		cfg("hard-small-cut", "5", "0", "9"),
		cfg("easy-big-cut", "25", "0", "1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].ScenarioName != "easy-big-cut" {
		t.Errorf("highest ROI should sort first, got %s", results[0].ScenarioName)
	}
	for i := 1; i < len(results); i++ {
		if results[i].ROIScore.GreaterThan(results[i-1].ROIScore) {
			t.Errorf("results not sorted by ROI at index %d", i)
		}
	}
}

func TestSimulate_TiesKeepInputOrder(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{
		cfg("first", "10", "0", "2"),
		cfg("second", "10", "0", "2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].ScenarioName != "first" || results[1].ScenarioName != "second" {
		t.Errorf("stable sort must keep input order on ties: %s, %s",
			results[0].ScenarioName, results[1].ScenarioName)
	}
}

func TestRecommend_PicksBestAchievable(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{
		cfg("overcut", "150", "0", "1"), // not achievable, would win on difficulty
		cfg("cut-20", "20", "0", "4"),
		cfg("cut-10", "10", "0", "8"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best := sim.Recommend(results)
	if best == nil {
		t.Fatal("expected a recommendation")
	}
	if best.ScenarioName != "cut-20" {
		t.Errorf("expected cut-20, got %s", best.ScenarioName)
	}
}

func TestRecommend_NoneAchievable(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate([]scenario.Config{cfg("overcut", "150", "0", "1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.Recommend(results) != nil {
		t.Error("no achievable results means no recommendation")
	}
}

// =============================================================================
// DEFAULT CONFIGS
// =============================================================================

func TestDefaultConfigs_FiveWithPositiveDifficulty(t *testing.T) {
	configs := scenario.DefaultConfigs(d(300_000))
	if len(configs) != 5 {
		t.Fatalf("expected 5 canned interventions, got %d", len(configs))
	}
	seen := map[string]bool{}
	for _, c := range configs {
		if !c.DifficultyScore.IsPositive() {
			t.Errorf("%s: difficulty must be positive", c.Name)
		}
		if c.Name == "" || seen[c.Name] {
			t.Errorf("intervention names must be unique and non-empty: %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestDefaultConfigs_AreSimulatable(t *testing.T) {
	sim := newSimulator(t)
	results, err := sim.Simulate(scenario.DefaultConfigs(baseBaseline().MonthlyExpense))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.Achievable {
			t.Errorf("%s: canned interventions should be achievable on a feasible baseline", res.ScenarioName)
		}
	}
}
