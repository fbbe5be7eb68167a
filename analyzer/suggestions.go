/*
suggestions.go - Rule-based improvement hints

PURPOSE:
  Generates ordered, priority-tagged suggestions from a computed status and
  the expense classifications. Rules fire independently; the output keeps
  emission order (high-priority rules are emitted first and never re-sorted),
  so consumers can render the list as-is.

RULES:
  1. HIGH   low asset growth        monthly growth below the warn threshold
  2. HIGH   long horizon            months-to-FI beyond the horizon threshold
  3. MEDIUM irregular expenses      any category classified irregular
  4. MEDIUM low progress            progress below the warn threshold

SEE ALSO:
  - analyzer.go: Produces the inputs these rules read
*/
package analyzer

import (
	"fmt"
	"strings"

	"github.com/warp/fire-engine/classify"
)

// SuggestImprovements evaluates the suggestion rules against a status and
// optional classifications. A nil status yields no suggestions.
func (a *Analyzer) SuggestImprovements(status *Status, classifications map[string]*classify.Result) []Suggestion {
	if status == nil {
		return nil
	}

	var out []Suggestion

	if status.Growth != nil && status.Growth.MonthlyGrowthPct < a.cfg.GrowthWarnMonthlyPct {
		out = append(out, Suggestion{
			Priority: PriorityHigh,
			Type:     "increase_savings_rate",
			Title:    "Raise your monthly savings rate",
			Description: fmt.Sprintf(
				"Assets are growing %.2f%% per month, below the %.2f%% guideline. Redirect more income into investments.",
				status.Growth.MonthlyGrowthPct, a.cfg.GrowthWarnMonthlyPct),
			Impact: "Faster asset growth compounds over the whole horizon",
		})
	}

	if status.MonthsToFI != nil && *status.MonthsToFI > a.cfg.LongHorizonMonths {
		out = append(out, Suggestion{
			Priority: PriorityHigh,
			Type:     "long_horizon",
			Title:    "Shorten the road to your target",
			Description: fmt.Sprintf(
				"At the current growth rate the target is %.0f months away. Consider raising income or trimming the target.",
				*status.MonthsToFI),
			Impact: "Each extra percent of savings removes months from the horizon",
		})
	}

	if irregular := irregularCategories(classifications); len(irregular) > 0 {
		out = append(out, Suggestion{
			Priority: PriorityMedium,
			Type:     "irregular_expenses",
			Title:    "Smooth out irregular spending",
			Description: fmt.Sprintf(
				"These categories show irregular spending patterns: %s. Budgeting them explicitly makes projections more reliable.",
				strings.Join(irregular, ", ")),
			Impact: "Predictable expenses make the FIRE projection trustworthy",
		})
	}

	if status.ProgressPct < a.cfg.ProgressWarnPct {
		out = append(out, Suggestion{
			Priority: PriorityMedium,
			Type:     "low_progress",
			Title:    "You are in the accumulation phase",
			Description: fmt.Sprintf(
				"Current assets cover %.1f%% of the target. Automating transfers into investments keeps the plan on track.",
				status.ProgressPct),
			Impact: "Consistent contributions matter most in the first half of the journey",
		})
	}

	return out
}
