package advisor

import (
	"fmt"
	"strings"

	"riskscope/internal/domain"
)

// Fallback narrative thresholds
const (
	fallbackHighVolatility  = 20.0 // assets above this count as high risk
	fallbackConcentration   = 20.0 // any position above this share flags concentration risk
	fallbackLowReturn       = 3.0  // expected return below this counts as low yield
	fallbackHighRiskShare   = 50.0 // combined high-risk percentage above this is notable
	fallbackLowReturnAlerts = 2    // more than this many low-yield positions triggers the review wording
)

const marketContextAdvisory = "Based on portfolio composition and risk metrics, focus on maintaining alignment " +
	"with your investment objectives while staying responsive to changing market conditions. Regular consultation " +
	"with a financial advisor is recommended for detailed market analysis and personalized guidance."

// fallbackAnalysis is the deterministic rule-based narrative. It never fails
// and always returns a well-formed result with exactly three recommendations.
func fallbackAnalysis(assets []domain.EnhancedAsset, riskScore int, riskLevel domain.RiskLevel) *domain.AIAnalysisResult {
	var highRiskPercentage float64
	hasConcentrationRisk := false
	lowReturnCount := 0
	hasNegativeReturn := false
	for _, a := range assets {
		if a.Volatility > fallbackHighVolatility {
			highRiskPercentage += a.Percentage
		}
		if a.Percentage > fallbackConcentration {
			hasConcentrationRisk = true
		}
		if a.ExpectedReturn < fallbackLowReturn {
			lowReturnCount++
		}
		if a.ExpectedReturn < 0 {
			hasNegativeReturn = true
		}
	}

	exposure := "the overall risk exposure is being managed through diversification."
	if highRiskPercentage > fallbackHighRiskShare {
		exposure = "there's a notable concentration in high-volatility assets that requires attention."
	}

	clauses := []string{
		pick(hasConcentrationRisk, "significant position concentration", "balanced asset distribution"),
		pick(highRiskPercentage > fallbackHighRiskShare, "high exposure to volatile assets", "controlled volatility exposure"),
		pick(lowReturnCount > fallbackLowReturnAlerts, "multiple low-yield positions", "satisfactory return potential"),
		pick(hasNegativeReturn, "presence of negative return expectations", "positive return outlook"),
	}

	recommendations := []string{
		pick(hasConcentrationRisk,
			"Implement position size limits of 20% per asset to improve diversification",
			"Maintain current diversification levels while monitoring market conditions"),
		pick(highRiskPercentage > fallbackHighRiskShare,
			"Consider reducing high-volatility exposure through strategic reallocation",
			"Look for opportunities to optimize risk-adjusted returns through tactical adjustments"),
		pick(lowReturnCount > fallbackLowReturnAlerts,
			"Review low-yielding positions for potential alternatives with better return profiles",
			"Continue regular portfolio rebalancing to maintain target allocations"),
	}

	return &domain.AIAnalysisResult{
		PersonalizedInsight: fmt.Sprintf("%s With a risk score of %d, %s", levelInsight(riskLevel), riskScore, exposure),
		RiskAnalysis: fmt.Sprintf("Current risk assessment highlights: %s. This combination of factors contributes to the %s risk classification.",
			strings.Join(clauses, ", "), strings.ToLower(string(riskLevel))),
		Recommendations: recommendations,
		MarketContext:   marketContextAdvisory,
	}
}

// levelInsight selects the opening template by risk level. The "very high"
// entry is reachable only for callers outside the aggregator's level set;
// anything unrecognized (including "Moderate-High") reads as moderate.
func levelInsight(level domain.RiskLevel) string {
	switch strings.ToLower(string(level)) {
	case "low":
		return "Your portfolio maintains a conservative risk profile with emphasis on capital preservation."
	case "high":
		return "Your portfolio shows an aggressive growth orientation with elevated risk levels."
	case "very high":
		return "Your portfolio demonstrates a highly speculative approach with significant risk exposure."
	default:
		return "Your portfolio balances growth potential with risk management strategies."
	}
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
