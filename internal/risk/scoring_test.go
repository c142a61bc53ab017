package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riskscope/internal/domain"
)

func TestConcentrationScore(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		assets   []domain.Asset
		expected float64
	}{
		{
			name:     "single asset takes the maximum penalty path",
			assets:   []domain.Asset{{Name: "A", Value: 10000}},
			expected: 100, // (100-20)*1.5 + 35 = 155, clamped
		},
		{
			name: "evenly split positions below the threshold keep the baseline",
			assets: []domain.Asset{
				{Name: "A", Value: 1000},
				{Name: "B", Value: 1000},
				{Name: "C", Value: 1000},
				{Name: "D", Value: 1000},
				{Name: "E", Value: 1000},
				{Name: "F", Value: 1000},
			},
			expected: 35, // each position is ~16.7%, no penalty
		},
		{
			name: "one oversized position accrues a linear penalty",
			assets: []domain.Asset{
				{Name: "A", Value: 3000},
				{Name: "B", Value: 1750},
				{Name: "C", Value: 1750},
				{Name: "D", Value: 1750},
				{Name: "E", Value: 1750},
			},
			expected: 35 + (30-20)*1.5, // only A (30%) exceeds the threshold
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cfg.ConcentrationScore(tt.assets), 1e-9)
		})
	}
}

func TestVolatilityScoreBandBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	// Single asset at 100% weight: score = volatility * multiplier + base
	tests := []struct {
		volatility float64
		expected   float64
	}{
		{8, 8*1.5 + 30},       // boundary uses the low multiplier
		{8.01, 8.01*2.5 + 30}, // just above switches to medium
		{20, 20*2.5 + 30},     // boundary uses the medium multiplier
		{20.01, 100},          // 20.01*3.5 + 30 = 100.035, clamped
	}

	for _, tt := range tests {
		assets := []domain.Asset{{Name: "A", Value: 1000, Volatility: tt.volatility}}
		assert.InDelta(t, tt.expected, cfg.VolatilityScore(assets), 1e-9, "volatility %v", tt.volatility)
	}
}

func TestScoringIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	assets := []domain.Asset{
		{Name: "Bonds", Value: 40000, Type: domain.AssetTypeGovernmentBond, Volatility: 4, ExpectedReturn: 2.5},
		{Name: "Equity", Value: 35000, Type: domain.AssetTypeStock, Volatility: 22, ExpectedReturn: 8},
		{Name: "Gold", Value: 25000, Type: domain.AssetTypeCommodity, Volatility: 14, ExpectedReturn: 4},
	}

	assert.Equal(t, cfg.ConcentrationScore(assets), cfg.ConcentrationScore(assets))
	assert.Equal(t, cfg.VolatilityScore(assets), cfg.VolatilityScore(assets))
}

func TestEndToEndScoreScenarios(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("dominant volatile position maxes out the score", func(t *testing.T) {
		assets := []domain.Asset{
			{Name: "A", Value: 15000, Volatility: 3},
			{Name: "B", Value: 85000, Volatility: 35},
		}
		conc := cfg.ConcentrationScore(assets)
		vol := cfg.VolatilityScore(assets)
		assert.InDelta(t, 100, conc, 1e-9) // (85-20)*1.5 + 35 = 132.5, clamped
		assert.InDelta(t, 100, vol, 1e-9)  // 3*0.15*1.5 + 35*0.85*3.5 + 30 > 100
		score := cfg.CombineScores(conc, vol)
		assert.Equal(t, 100, score)
		assert.Equal(t, domain.RiskLevelHigh, cfg.LevelFor(score))
	})

	t.Run("single quiet asset lands in moderate-high on concentration alone", func(t *testing.T) {
		assets := []domain.Asset{{Name: "A", Value: 10000, Volatility: 5, ExpectedReturn: 4}}
		conc := cfg.ConcentrationScore(assets)
		vol := cfg.VolatilityScore(assets)
		assert.InDelta(t, 100, conc, 1e-9)
		assert.InDelta(t, 37.5, vol, 1e-9) // 5*1*1.5 + 30
		score := cfg.CombineScores(conc, vol)
		assert.Equal(t, 63, score) // round(100*0.4 + 37.5*0.6) = round(62.5)
		assert.Equal(t, domain.RiskLevelModerateHigh, cfg.LevelFor(score))
	})
}
