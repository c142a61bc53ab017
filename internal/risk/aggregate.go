package risk

import (
	"math"

	"riskscope/internal/domain"
)

// CombineScores blends the two sub-scores into the final risk score.
// Volatility carries more weight than concentration. The result is an integer
// in [0, 100]; both inputs are already clamped upstream.
func (c Config) CombineScores(concentration, volatility float64) int {
	weighted := concentration*c.WeightConcentration + volatility*c.WeightVolatility
	return int(math.Min(math.Round(weighted), maxScore))
}

// LevelFor maps a risk score to its discrete risk level
func (c Config) LevelFor(score int) domain.RiskLevel {
	switch {
	case score < c.ThresholdLow:
		return domain.RiskLevelLow
	case score < c.ThresholdModerate:
		return domain.RiskLevelModerate
	case score < c.ThresholdHigh:
		return domain.RiskLevelModerateHigh
	default:
		return domain.RiskLevelHigh
	}
}
