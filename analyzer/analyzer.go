/*
analyzer.go - Orchestration over the leaf components

PURPOSE:
  Implements the four orchestration operations: status, multi-scenario
  projection, per-category classification, and history smoothing. Each call
  allocates fresh result objects; the analyzer holds configuration only, so
  concurrent callers need no synchronization.

CONFIGURATION:
  Every default the engine exposes (FIRE multiplier, minimum history length,
  suggestion thresholds) lives in Config so the calling layer can override
  it. The clock is injectable for testability.

SEE ALSO:
  - types.go: Input/output shapes
  - suggestions.go: Rule-based improvement hints
  - cached.go: Memoizing boundary wrapper
*/
package analyzer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/classify"
	"github.com/warp/fire-engine/fin"
	"github.com/warp/fire-engine/fire"
	"github.com/warp/fire-engine/stats"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config holds every tunable default of the orchestrator.
type Config struct {
	// FIREMultiplier derives the FIRE target from the annual expense
	// (the classic rule of thumb is 25x).
	FIREMultiplier decimal.Decimal
	// MinDataPoints is the smallest asset history worth fitting.
	MinDataPoints int
	// GrowthMethod selects the fitting method for asset histories.
	GrowthMethod stats.Method
	// GrowthWarnMonthlyPct triggers the low-growth suggestion (percent).
	GrowthWarnMonthlyPct float64
	// LongHorizonMonths triggers the long-road suggestion.
	LongHorizonMonths float64
	// ProgressWarnPct triggers the low-progress suggestion (percent).
	ProgressWarnPct float64
}

// DefaultConfig returns the standard orchestrator defaults.
func DefaultConfig() Config {
	return Config{
		FIREMultiplier:       decimal.NewFromInt(25),
		MinDataPoints:        stats.MinGrowthDataPoints,
		GrowthMethod:         stats.MethodRegression,
		GrowthWarnMonthlyPct: 1.0,
		LongHorizonMonths:    120,
		ProgressWarnPct:      50,
	}
}

// =============================================================================
// ANALYZER
// =============================================================================

// Analyzer orchestrates classification, growth analysis, and projection.
type Analyzer struct {
	cfg        Config
	classifier *classify.Classifier
	calc       *fire.Calculator
	now        func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(a *Analyzer) { a.cfg = cfg }
}

// WithClassifier replaces the default expense classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

// WithCalculator replaces the default FIRE calculator.
func WithCalculator(c *fire.Calculator) Option {
	return func(a *Analyzer) { a.calc = c }
}

// WithClock injects the wall clock used for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New builds an analyzer with defaults, then applies options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:        DefaultConfig(),
		classifier: classify.NewClassifier(),
		calc:       fire.NewCalculator(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the analyzer's effective configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// =============================================================================
// STATUS
// =============================================================================

// Status computes the headline FIRE position. The FIRE target is annual
// expense times the multiplier; an explicit positive TargetAssets overrides
// it. When the asset history has enough points a growth fit and a
// months-to-FI estimate are attached.
func (a *Analyzer) Status(in StatusInput) (*Status, error) {
	if in.CurrentAssets.IsNegative() {
		return nil, fin.NewValidation("current_assets", "must be >= 0")
	}
	if in.AnnualExpense.IsNegative() {
		return nil, fin.NewValidation("annual_expense", "must be >= 0")
	}
	if in.TargetAssets.IsNegative() {
		return nil, fin.NewValidation("target_assets", "must be >= 0")
	}

	fireTarget := fin.RoundMoney(in.AnnualExpense.Mul(a.cfg.FIREMultiplier))

	target := in.TargetAssets
	if !target.IsPositive() {
		target = fireTarget
	}
	if !target.IsPositive() {
		return nil, fin.NewValidation("target_assets", "no positive target available")
	}

	hundred := decimal.NewFromInt(100)
	progress := in.CurrentAssets.Div(target).Mul(hundred).InexactFloat64()

	status := &Status{
		GeneratedAt:   a.now(),
		CurrentAssets: fin.RoundMoney(in.CurrentAssets),
		TargetAssets:  fin.RoundMoney(target),
		FireTarget:    fireTarget,
		ProgressPct:   fin.RoundRate(progress, 2),
		Achieved:      in.CurrentAssets.GreaterThanOrEqual(target),
	}

	if len(in.AssetHistory) >= a.cfg.MinDataPoints {
		growth, err := stats.GrowthFromHistory(in.AssetHistory, a.cfg.GrowthMethod)
		if err != nil {
			return nil, err
		}
		status.Growth = growth

		months, err := stats.MonthsToTarget(in.CurrentAssets, target, growth.MonthlyGrowthDecimal)
		if err != nil {
			return nil, err
		}
		status.MonthsToFI = months
	}

	return status, nil
}

// =============================================================================
// SCENARIO PROJECTIONS
// =============================================================================

// Scenarios fits the asset history and projects the three standard outlooks
// (0.7x / 1.0x / 1.3x of the fitted monthly rate) plus any caller-supplied
// custom scenarios, each independently.
func (a *Analyzer) Scenarios(current, target decimal.Decimal, history []decimal.Decimal, custom []CustomScenario) ([]stats.ProjectionScenario, error) {
	growth, err := stats.GrowthFromHistory(history, a.cfg.GrowthMethod)
	if err != nil {
		return nil, err
	}
	base := growth.MonthlyGrowthDecimal

	out := make([]stats.ProjectionScenario, 0, 3+len(custom))
	for _, outlook := range fire.Outlooks() {
		sc, err := stats.NewProjectionScenario(
			string(outlook), current, target, base*fire.OutlookMultiplier(outlook))
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	for _, cs := range custom {
		sc, err := stats.NewProjectionScenario(cs.Name, current, target, cs.MonthlyGrowthRate)
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	return out, nil
}

// =============================================================================
// EXPENSE CLASSIFICATION
// =============================================================================

// ClassifyExpenses classifies each category's history over the analysis
// window. Zero months are dropped before classification; a category with no
// occurrences at all gets the canned no-occurrence result.
func (a *Analyzer) ClassifyExpenses(history map[string][]decimal.Decimal, months int) (map[string]*classify.Result, error) {
	results := make(map[string]*classify.Result, len(history))
	for category, amounts := range history {
		occurrences := make([]decimal.Decimal, 0, len(amounts))
		for _, amt := range amounts {
			if !amt.IsZero() {
				occurrences = append(occurrences, amt)
			}
		}

		res, err := a.classifier.Classify(occurrences, months, len(occurrences))
		if err != nil {
			return nil, err
		}
		results[category] = res
	}
	return results, nil
}

// =============================================================================
// HISTORY SMOOTHING
// =============================================================================

// SmoothHistory applies a simple moving average to a noisy asset history so
// callers can smooth before fitting growth.
func (a *Analyzer) SmoothHistory(values []decimal.Decimal, window int) ([]decimal.Decimal, error) {
	return stats.MovingAverage(values, window)
}

// irregularCategories returns the sorted names of categories classified as
// irregular, excluding the no-occurrence shortcut.
func irregularCategories(classifications map[string]*classify.Result) []string {
	var names []string
	for category, res := range classifications {
		if res == nil || res.Classification != classify.Irregular {
			continue
		}
		if res.Reasoning.Reason != "" {
			continue
		}
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}
