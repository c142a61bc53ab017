package advisor

import (
	"fmt"
	"strings"

	"riskscope/internal/domain"
)

// buildPrompt composes the advisor prompt from the analyzed portfolio. The
// response is requested as a JSON object with the four required keys so it can
// be parsed directly into domain.AIAnalysisResult.
func buildPrompt(assets []domain.EnhancedAsset, riskScore int, riskLevel domain.RiskLevel) string {
	var sb strings.Builder

	sb.WriteString("As a financial advisor, analyze this investment portfolio:\n\n")
	sb.WriteString("Risk Profile:\n")
	fmt.Fprintf(&sb, "- Risk Score: %d/100\n", riskScore)
	fmt.Fprintf(&sb, "- Risk Level: %s\n\n", riskLevel)

	sb.WriteString("Portfolio Composition:\n")
	for _, a := range assets {
		fmt.Fprintf(&sb, "%s (%s): %.1f%% of portfolio, volatility: %g%%, expected return: %g%%\n",
			a.Name, a.Type, a.Percentage, a.Volatility, a.ExpectedReturn)
	}

	sb.WriteString(`
Provide a detailed analysis including:
1. Personalized portfolio insight focusing on risk-adjusted returns
2. Risk analysis highlighting key concerns and potential vulnerabilities
3. Three specific, actionable recommendations for portfolio improvement
4. Current market context and its impact on this portfolio composition

Format the response in JSON with these keys:
- personalizedInsight (string)
- riskAnalysis (string)
- recommendations (array of 3 strings)
- marketContext (string)`)

	return sb.String()
}
