// Package risk implements the portfolio risk scoring engine: concentration and
// volatility sub-scores, the combined risk score and level, per-asset
// insights/suggestions, and the portfolio comment.
package risk

// =============================================================================
// SCORING CONFIGURATION
// =============================================================================
// Thresholds and weights are deliberately strict: both sub-scores carry a
// baseline (no finite portfolio is free of concentration or volatility risk)
// and the blend leans on volatility as the primary risk proxy.

// Config holds the scoring thresholds and weights. It is immutable after
// construction and safe to share across concurrent analyses.
type Config struct {
	// Concentration scoring
	ConcentrationBase      float64 // baseline added to every concentration score
	ConcentrationThreshold float64 // single-position percentage above which the penalty accrues
	ConcentrationFactor    float64 // penalty multiplier per percentage point above the threshold

	// Volatility scoring
	VolatilityBase       float64 // baseline added to every volatility score
	VolatilityLowBand    float64 // volatility <= low band uses MultiplierLow
	VolatilityMediumBand float64 // volatility <= medium band uses MultiplierMedium, above it MultiplierHigh
	MultiplierLow        float64
	MultiplierMedium     float64
	MultiplierHigh       float64

	// Score blending
	WeightConcentration float64
	WeightVolatility    float64

	// Risk level cut-offs (score < threshold selects the band)
	ThresholdLow      int
	ThresholdModerate int
	ThresholdHigh     int

	// Insight and suggestion rules
	InsightVolatilityBand float64 // volatility above this uses the high-volatility insight phrasing
	RebalancePercentage   float64 // position share above this suggests rebalancing
	AlertVolatility       float64 // volatility above this suggests monitoring
	LowExpectedReturn     float64 // expected return below this suggests a yield review
	MaintainMaxVolatility float64 // volatility below this (with sufficient return) suggests holding
	MaintainMinReturn     float64
	CommentConcentration  float64 // concentration score above this adds a diversification note
}

// DefaultConfig returns the production scoring configuration
func DefaultConfig() Config {
	return Config{
		ConcentrationBase:      35,
		ConcentrationThreshold: 20,
		ConcentrationFactor:    1.5,

		VolatilityBase:       30,
		VolatilityLowBand:    8,
		VolatilityMediumBand: 20,
		MultiplierLow:        1.5,
		MultiplierMedium:     2.5,
		MultiplierHigh:       3.5,

		WeightConcentration: 0.4,
		WeightVolatility:    0.6,

		ThresholdLow:      30,
		ThresholdModerate: 45,
		ThresholdHigh:     60,

		InsightVolatilityBand: 15,
		RebalancePercentage:   25,
		AlertVolatility:       30,
		LowExpectedReturn:     2,
		MaintainMaxVolatility: 10,
		MaintainMinReturn:     3,
		CommentConcentration:  60,
	}
}
