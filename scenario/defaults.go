package scenario

import (
	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
)

// =============================================================================
// DEFAULT INTERVENTIONS
// =============================================================================

// DefaultConfigs returns the canned set of five interventions sized against
// the household's current monthly expense. Every entry carries a positive
// difficulty so ROI scores stay meaningful.
func DefaultConfigs(monthlyExpense decimal.Decimal) []Config {
	tenPercent := monthlyExpense.Mul(fin.MustParseDecimal("0.10"))

	return []Config{
		{
			Name:                "trim-subscriptions",
			Description:         "Cancel unused subscriptions and renegotiate recurring bills",
			ExpenseReductionPct: fin.MustParseDecimal("5"),
			DifficultyScore:     fin.MustParseDecimal("1"),
		},
		{
			Name:                "cut-dining-out",
			Description:         "Halve restaurant and delivery spending",
			ExpenseReductionPct: fin.MustParseDecimal("10"),
			DifficultyScore:     fin.MustParseDecimal("3"),
		},
		{
			Name:                "downsize-housing",
			Description:         "Move to cheaper housing or renegotiate rent",
			ExpenseReductionPct: fin.MustParseDecimal("25"),
			DifficultyScore:     fin.MustParseDecimal("8"),
		},
		{
			Name:            "side-income",
			Description:     "Add a side income worth about 10% of monthly expenses",
			IncomeIncrease:  tenPercent,
			DifficultyScore: fin.MustParseDecimal("5"),
		},
		{
			Name:                "combined-moderate",
			Description:         "Moderate expense cut combined with a small side income",
			ExpenseReductionPct: fin.MustParseDecimal("10"),
			IncomeIncrease:      tenPercent.Div(decimal.NewFromInt(2)),
			DifficultyScore:     fin.MustParseDecimal("6"),
		},
	}
}
