package stats

// =============================================================================
// ORDINARY LEAST SQUARES - value vs. month index
// =============================================================================

// OLSFit is the result of a least-squares line fit.
type OLSFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// FitOLS fits value = slope*index + intercept over indexes 0..n-1.
// RSquared is 1 when the residuals are zero against a flat series
// (a constant series fits its own mean exactly).
func FitOLS(values []float64) OLSFit {
	n := float64(len(values))
	if len(values) < 2 {
		return OLSFit{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return OLSFit{}
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	// R-squared: 1 - SSres/SStot
	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		pred := slope*float64(i) + intercept
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - meanY) * (y - meanY)
	}

	var r2 float64
	switch {
	case ssTot == 0 && ssRes == 0:
		r2 = 1
	case ssTot == 0:
		r2 = 0
	default:
		r2 = 1 - ssRes/ssTot
	}
	if r2 < 0 {
		r2 = 0
	}

	return OLSFit{Slope: slope, Intercept: intercept, RSquared: r2}
}
