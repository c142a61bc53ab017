package risk

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"riskscope/internal/domain"
)

const maxScore = 100.0

// TotalValue returns the sum of all asset values
func TotalValue(assets []domain.Asset) float64 {
	values := make([]float64, len(assets))
	for i, a := range assets {
		values[i] = a.Value
	}
	return floats.Sum(values)
}

// ConcentrationScore computes the concentration risk sub-score (0-100).
// Each position holding more than ConcentrationThreshold percent of total value
// accrues a linear penalty; the baseline reflects the concentration risk
// inherent in any finite portfolio.
//
// Pure and deterministic; assumes a non-empty asset list with positive total
// value (the facade guards this).
func (c Config) ConcentrationScore(assets []domain.Asset) float64 {
	total := TotalValue(assets)
	var penalty float64
	for _, a := range assets {
		pct := a.Value / total * 100
		if pct > c.ConcentrationThreshold {
			penalty += (pct - c.ConcentrationThreshold) * c.ConcentrationFactor
		}
	}
	return math.Min(penalty+c.ConcentrationBase, maxScore)
}

// VolatilityScore computes the volatility risk sub-score (0-100).
// Each asset contributes volatility * weight * band multiplier, where the band
// is right-inclusive on the low end: volatility equal to a band boundary uses
// the lower multiplier.
func (c Config) VolatilityScore(assets []domain.Asset) float64 {
	total := TotalValue(assets)
	var sum float64
	for _, a := range assets {
		weight := a.Value / total
		multiplier := c.MultiplierHigh
		switch {
		case a.Volatility <= c.VolatilityLowBand:
			multiplier = c.MultiplierLow
		case a.Volatility <= c.VolatilityMediumBand:
			multiplier = c.MultiplierMedium
		}
		sum += a.Volatility * weight * multiplier
	}
	return math.Min(sum+c.VolatilityBase, maxScore)
}
