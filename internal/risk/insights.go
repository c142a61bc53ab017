package risk

import (
	"strings"

	"riskscope/internal/domain"
)

const insightDefault = "Position aligned with portfolio strategy"

// InsightFor returns the descriptive insight for an asset, keyed by asset type
// and volatility band. Unknown types fall through to a generic phrase.
func (c Config) InsightFor(asset domain.Asset) string {
	high := asset.Volatility > c.InsightVolatilityBand
	switch asset.Type {
	case domain.AssetTypeGovernmentBond:
		if high {
			return "Core position with moderate duration exposure"
		}
		return "Stable fixed income component providing portfolio foundation"
	case domain.AssetTypeCorporateBond:
		if high {
			return "Balanced yield and credit risk profile"
		}
		return "Quality credit exposure with attractive yield"
	case domain.AssetTypeStock:
		if high {
			return "Growth-oriented position with managed risk"
		}
		return "Well-positioned equity with growth potential"
	case domain.AssetTypeCommodity:
		if high {
			return "Alternative asset providing market hedge"
		}
		return "Strategic portfolio diversifier"
	default:
		return insightDefault
	}
}

// SuggestionFor returns the action tag for an asset. The cascade is ordered:
// an oversized position is always flagged for rebalancing before any
// volatility or yield concern is considered.
func (c Config) SuggestionFor(asset domain.Asset, percentage float64) string {
	switch {
	case percentage > c.RebalancePercentage:
		return domain.SuggestionRebalance
	case asset.Volatility > c.AlertVolatility:
		return domain.SuggestionMonitorVolatility
	case asset.ExpectedReturn < c.LowExpectedReturn:
		return domain.SuggestionReviewYield
	case asset.Volatility < c.MaintainMaxVolatility && asset.ExpectedReturn > c.MaintainMinReturn:
		return domain.SuggestionMaintainPosition
	default:
		return domain.SuggestionHoldAndMonitor
	}
}

// Comment produces the portfolio-level narrative. Each observation fires
// independently; the same inputs always yield the same text.
func (c Config) Comment(riskScore int, concentrationScore float64, assets []domain.Asset) string {
	highVolCount := 0
	lowReturnCount := 0
	for _, a := range assets {
		if a.Volatility > c.AlertVolatility {
			highVolCount++
		}
		if a.ExpectedReturn < c.LowExpectedReturn {
			lowReturnCount++
		}
	}

	var observations []string
	if riskScore > c.ThresholdHigh {
		observations = append(observations, "Portfolio shows elevated risk metrics")
	}
	if concentrationScore > c.CommentConcentration {
		observations = append(observations, "Consider broader diversification")
	}
	if highVolCount > 1 {
		observations = append(observations, "Monitor higher volatility positions")
	}
	if lowReturnCount > 1 {
		observations = append(observations, "Review low-yield positions")
	}

	if len(observations) > 0 {
		return "Portfolio Review: " + strings.Join(observations, ". ") + ". Regular monitoring recommended."
	}
	return "Portfolio composition appears well-balanced. Continue regular review of positions and market conditions."
}
