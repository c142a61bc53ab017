// Package domain provides core domain models and types.
package domain

// AssetType represents the category of a portfolio position
type AssetType string

const (
	// AssetTypeGovernmentBond represents sovereign fixed income
	AssetTypeGovernmentBond AssetType = "Government Bond"
	// AssetTypeCorporateBond represents corporate credit
	AssetTypeCorporateBond AssetType = "Corporate Bond"
	// AssetTypeStock represents individual equities
	AssetTypeStock AssetType = "Stock"
	// AssetTypeCommodity represents commodity exposure
	AssetTypeCommodity AssetType = "Commodity"
	// AssetTypeOther represents anything outside the closed set
	AssetTypeOther AssetType = "Other"
)

// RiskLevel represents the discrete risk band derived from the risk score
type RiskLevel string

const (
	RiskLevelLow          RiskLevel = "Low"
	RiskLevelModerate     RiskLevel = "Moderate"
	RiskLevelModerateHigh RiskLevel = "Moderate-High"
	RiskLevelHigh         RiskLevel = "High"
)

// Suggestion action tags. The generator only ever emits values from this set.
const (
	SuggestionRebalance         = "Consider rebalancing"
	SuggestionMonitorVolatility = "Monitor volatility"
	SuggestionReviewYield       = "Review yield profile"
	SuggestionMaintainPosition  = "Maintain position"
	SuggestionHoldAndMonitor    = "Hold and monitor"
)

// Asset represents a single investment position as submitted for analysis.
// Values are immutable once submitted; the engine never mutates its input.
type Asset struct {
	Name           string    `json:"name"`
	Value          float64   `json:"value"`
	Type           AssetType `json:"type"`
	Category       string    `json:"category"`
	Volatility     float64   `json:"volatility"`     // annualized, percent
	ExpectedReturn float64   `json:"expectedReturn"` // signed, percent
}

// EnhancedAsset is an Asset annotated with the engine's derived fields
type EnhancedAsset struct {
	Asset
	Percentage float64 `json:"percentage"` // share of total portfolio value, percent
	Insight    string  `json:"insight"`
	Suggestion string  `json:"suggestion"`
}

// PortfolioMetrics is the engine's analysis result for one portfolio
type PortfolioMetrics struct {
	TotalValue float64         `json:"totalValue"`
	RiskScore  int             `json:"riskScore"` // 0-100
	RiskLevel  RiskLevel       `json:"riskLevel"`
	Comment    string          `json:"comment"`
	Assets     []EnhancedAsset `json:"assets"` // same order as input
}

// AIAnalysisResult is the narrative enrichment for one analysis.
// Produced fresh per request, never cached or merged with prior results.
type AIAnalysisResult struct {
	PersonalizedInsight string   `json:"personalizedInsight"`
	RiskAnalysis        string   `json:"riskAnalysis"`
	Recommendations     []string `json:"recommendations"` // always exactly 3
	MarketContext       string   `json:"marketContext"`
}
