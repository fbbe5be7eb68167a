/*
classifier.go - IQR / occurrence / variation blend

PURPOSE:
  Implements the three-part classification heuristic and the confidence
  blend. Each sub-analysis earns partial credit when its hard threshold is
  missed, so a category that almost qualifies still scores close to the cut.

CONFIDENCE BLEND (weights sum to 1.0):
  IQR        up to 0.30  full credit with no outliers, else 0.30*(1-ratio)
  Occurrence up to 0.35  full credit when rate >= threshold, else 0.35*rate
  Variation  up to 0.35  full credit when cv <= threshold, else 0.35*max(0,1-cv)

THRESHOLDS:
  All three thresholds are constructor parameters so the calling layer can
  override them (defaults: IQR multiplier 1.5, occurrence 0.6, cv 0.3).

SEE ALSO:
  - types.go: Result and reasoning shapes
  - analyzer/: Per-category orchestration over a full expense history
*/
package classify

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/fire-engine/fin"
	"github.com/warp/fire-engine/stats"
)

// =============================================================================
// THRESHOLDS AND WEIGHTS
// =============================================================================

// Thresholds are the tunable cut-offs of the three sub-analyses.
type Thresholds struct {
	// IQRMultiplier widens the outlier bounds: Q1/Q3 -/+ multiplier*IQR.
	IQRMultiplier float64
	// OccurrenceRate is the minimum occurrences/months ratio for regularity.
	OccurrenceRate float64
	// CV is the maximum coefficient of variation considered stable.
	CV float64
}

// DefaultThresholds returns the standard cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{IQRMultiplier: 1.5, OccurrenceRate: 0.6, CV: 0.3}
}

// Confidence weights. These sum to 1.0 so the blended score stays in [0,1].
const (
	weightIQR        = 0.30
	weightOccurrence = 0.35
	weightVariation  = 0.35
)

// minIQRPoints is the smallest sample an outlier scan is meaningful for.
const minIQRPoints = 4

// confidencePlaces is the fixed-point precision of the blended confidence.
const confidencePlaces = 3

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classifier classifies a single category's monthly amounts.
type Classifier struct {
	Thresholds Thresholds
}

// NewClassifier returns a classifier with default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{Thresholds: DefaultThresholds()}
}

// Classify labels the amounts of one category. amounts holds one entry per
// month the category occurred; months is the full analysis window.
//
// Precondition: len(amounts) == occurrences.
func (c *Classifier) Classify(amounts []decimal.Decimal, months, occurrences int) (*Result, error) {
	if len(amounts) != occurrences {
		return nil, fin.NewValidation("amounts", "length mismatch with occurrences")
	}

	if occurrences == 0 {
		return &Result{
			Classification: Irregular,
			Confidence:     1.0,
			Reasoning:      Reasoning{Reason: "no occurrence"},
		}, nil
	}

	series := make([]float64, len(amounts))
	for i, a := range amounts {
		series[i] = a.InexactFloat64()
	}

	iqr := c.analyzeIQR(series)

	occurrence, err := c.analyzeOccurrence(months, occurrences)
	if err != nil {
		return nil, err
	}

	variation, err := c.analyzeVariation(series)
	if err != nil {
		return nil, err
	}

	confidence := c.blendConfidence(iqr, occurrence, variation)

	label := Irregular
	if occurrence.IsRegular && variation.IsStable {
		label = Regular
	}

	return &Result{
		Classification: label,
		Confidence:     confidence,
		Reasoning: Reasoning{
			IQR:        iqr,
			Occurrence: occurrence,
			Variation:  variation,
		},
	}, nil
}

// =============================================================================
// SUB-ANALYSES
// =============================================================================

func (c *Classifier) analyzeIQR(series []float64) *IQRAnalysis {
	if len(series) < minIQRPoints {
		// Too small a sample to call anything an outlier.
		return &IQRAnalysis{}
	}

	q1 := stats.Percentile(series, 25)
	q3 := stats.Percentile(series, 75)
	iqr := q3 - q1
	lower := q1 - c.Thresholds.IQRMultiplier*iqr
	upper := q3 + c.Thresholds.IQRMultiplier*iqr

	outliers := 0
	for _, v := range series {
		if v < lower || v > upper {
			outliers++
		}
	}

	return &IQRAnalysis{
		HasOutliers:  outliers > 0,
		OutlierCount: outliers,
		OutlierRatio: float64(outliers) / float64(len(series)),
		IQR:          iqr,
		Q1:           q1,
		Q3:           q3,
		LowerBound:   lower,
		UpperBound:   upper,
	}
}

func (c *Classifier) analyzeOccurrence(months, occurrences int) (*OccurrenceAnalysis, error) {
	if months <= 0 {
		return nil, fin.NewValidation("months", "must be > 0")
	}
	rate := float64(occurrences) / float64(months)
	return &OccurrenceAnalysis{
		Rate:      rate,
		IsRegular: rate >= c.Thresholds.OccurrenceRate,
	}, nil
}

func (c *Classifier) analyzeVariation(series []float64) (*VariationAnalysis, error) {
	if len(series) < 2 {
		return &VariationAnalysis{CV: 0, IsStable: true}, nil
	}
	cv, err := stats.CoefficientOfVariation(series)
	if err != nil {
		return nil, err
	}
	return &VariationAnalysis{CV: cv, IsStable: cv <= c.Thresholds.CV}, nil
}

// =============================================================================
// CONFIDENCE BLEND
// =============================================================================

func (c *Classifier) blendConfidence(iqr *IQRAnalysis, occ *OccurrenceAnalysis, v *VariationAnalysis) float64 {
	var score float64

	if !iqr.HasOutliers {
		score += weightIQR
	} else {
		score += weightIQR * (1 - iqr.OutlierRatio)
	}

	if occ.IsRegular {
		score += weightOccurrence
	} else {
		score += weightOccurrence * occ.Rate
	}

	if v.IsStable {
		score += weightVariation
	} else {
		score += weightVariation * math.Max(0, 1-v.CV)
	}

	score = math.Max(0, math.Min(1, score))
	return fin.RoundRate(score, confidencePlaces)
}
