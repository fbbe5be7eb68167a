/*
Package classify labels expense categories as regular or irregular.

PURPOSE:
  Given a category's monthly amounts, decide whether the spending pattern is
  regular (predictable, budgetable) or irregular (spiky, one-off), with a
  blended confidence score explaining how sure the call is.

KEY CONCEPTS IN THIS FILE (types.go):
  - Regularity: closed enum, "regular" or "irregular"
  - Result: immutable classification outcome with structured reasoning
  - Reasoning: the three sub-analyses (IQR outliers, occurrence rate,
    coefficient of variation) that fed the decision

CLASSIFICATION RULE:
  The binary label depends on occurrence rate and variation stability only.
  IQR outliers lower the confidence but never flip the label. That asymmetry
  is intentional and load-bearing for downstream consumers.

SEE ALSO:
  - classifier.go: The classification algorithm
  - stats/: Percentile and dispersion primitives
*/
package classify

// =============================================================================
// REGULARITY - closed label set
// =============================================================================

// Regularity is the binary spending-pattern label.
type Regularity string

const (
	Regular   Regularity = "regular"
	Irregular Regularity = "irregular"
)

// =============================================================================
// SUB-ANALYSES
// =============================================================================

// IQRAnalysis is the interquartile-range outlier scan.
type IQRAnalysis struct {
	HasOutliers  bool    `json:"has_outliers"`
	OutlierCount int     `json:"outlier_count"`
	OutlierRatio float64 `json:"outlier_ratio"`
	IQR          float64 `json:"iqr"`
	Q1           float64 `json:"q1"`
	Q3           float64 `json:"q3"`
	LowerBound   float64 `json:"lower_bound"`
	UpperBound   float64 `json:"upper_bound"`
}

// OccurrenceAnalysis measures how often the category shows up at all.
type OccurrenceAnalysis struct {
	Rate      float64 `json:"rate"`
	IsRegular bool    `json:"is_regular"`
}

// VariationAnalysis measures relative dispersion of the amounts.
type VariationAnalysis struct {
	CV       float64 `json:"cv"`
	IsStable bool    `json:"is_stable"`
}

// Reasoning is the structured breakdown behind a classification.
// For the no-occurrence shortcut only Reason is set.
type Reasoning struct {
	Reason     string              `json:"reason,omitempty"`
	IQR        *IQRAnalysis        `json:"iqr,omitempty"`
	Occurrence *OccurrenceAnalysis `json:"occurrence,omitempty"`
	Variation  *VariationAnalysis  `json:"variation,omitempty"`
}

// Result is the immutable outcome of classifying one category over one
// analysis window. Confidence is always within [0, 1].
type Result struct {
	Classification Regularity `json:"classification"`
	Confidence     float64    `json:"confidence"`
	Reasoning      Reasoning  `json:"reasoning"`
}
