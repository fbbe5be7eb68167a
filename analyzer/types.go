/*
Package analyzer orchestrates the FIRE engine for a whole household.

PURPOSE:
  Ties the leaf components together: overall status (target, progress,
  fitted growth), multi-outlook projections, per-category expense
  classification, and ranked textual improvement suggestions. Everything the
  surrounding API layer consumes comes out of this package.

KEY CONCEPTS IN THIS FILE (types.go):
  - StatusInput/Status: the headline "where do I stand" computation
  - CustomScenario: a caller-supplied growth trajectory to project
  - Priority/Suggestion: rule-based improvement hints, emission-ordered

SEE ALSO:
  - analyzer.go: The orchestration logic
  - suggestions.go: The suggestion rules
  - cached.go: Memoizing boundary wrapper
*/
package analyzer

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/stats"
)

// =============================================================================
// STATUS
// =============================================================================

// StatusInput holds the household figures for a status computation.
type StatusInput struct {
	CurrentAssets decimal.Decimal
	// TargetAssets overrides the derived FIRE target when positive.
	TargetAssets decimal.Decimal
	// AnnualExpense drives the derived FIRE target (expense x multiplier).
	AnnualExpense decimal.Decimal
	// AssetHistory enables growth analysis when it has enough points.
	AssetHistory []decimal.Decimal
}

// Status is the immutable headline view of a household's FIRE position.
type Status struct {
	GeneratedAt   time.Time                 `json:"generated_at"`
	CurrentAssets decimal.Decimal           `json:"current_assets"`
	TargetAssets  decimal.Decimal           `json:"target_assets"`
	FireTarget    decimal.Decimal           `json:"fire_target"`
	ProgressPct   float64                   `json:"progress_rate"`
	Achieved      bool                      `json:"is_achieved"`
	Growth        *stats.GrowthRateAnalysis `json:"growth,omitempty"`
	MonthsToFI    *float64                  `json:"months_to_fi,omitempty"`
}

// =============================================================================
// CUSTOM SCENARIOS
// =============================================================================

// CustomScenario is a caller-supplied trajectory projected alongside the
// three standard outlooks.
type CustomScenario struct {
	Name              string
	MonthlyGrowthRate float64
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// Priority tags how urgent a suggestion is.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// Suggestion is one rule-generated improvement hint.
type Suggestion struct {
	Priority    Priority `json:"priority"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}
