package advisor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscope/internal/domain"
)

const validResponse = `{
	"personalizedInsight": "Insight from the model.",
	"riskAnalysis": "Risk analysis from the model.",
	"recommendations": ["First", "Second", "Third"],
	"marketContext": "Context from the model."
}`

// fakeClient returns scripted results in order, repeating the last one
type fakeClient struct {
	results []fakeResult
	calls   int
}

type fakeResult struct {
	content string
	err     error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	return f.results[i].content, f.results[i].err
}

func rateLimited() error {
	return fmt.Errorf("%w: 429 from backend", domain.ErrModelRateLimited)
}

func testConfig() Config {
	return Config{MaxRetries: 3, BaseDelay: time.Millisecond}
}

func testAssets() []domain.EnhancedAsset {
	return []domain.EnhancedAsset{
		{Asset: domain.Asset{Name: "Bonds", Type: domain.AssetTypeGovernmentBond, Volatility: 4, ExpectedReturn: 2.5}, Percentage: 40},
		{Asset: domain.Asset{Name: "Equity", Type: domain.AssetTypeStock, Volatility: 22, ExpectedReturn: 8}, Percentage: 60},
	}
}

func TestAnalyzeWithoutClientUsesFallback(t *testing.T) {
	svc := NewService(nil, testConfig(), zerolog.Nop())

	result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	assert.Contains(t, result.PersonalizedInsight, "balances growth potential")
}

func TestAnalyzeReturnsModelResult(t *testing.T) {
	client := &fakeClient{results: []fakeResult{{content: validResponse}}}
	svc := NewService(client, testConfig(), zerolog.Nop())

	result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
	require.NoError(t, err)
	assert.Equal(t, "Insight from the model.", result.PersonalizedInsight)
	assert.Equal(t, []string{"First", "Second", "Third"}, result.Recommendations)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeRetriesRateLimits(t *testing.T) {
	client := &fakeClient{results: []fakeResult{
		{err: rateLimited()},
		{err: rateLimited()},
		{content: validResponse},
	}}
	svc := NewService(client, testConfig(), zerolog.Nop())

	result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
	require.NoError(t, err)
	assert.Equal(t, "Insight from the model.", result.PersonalizedInsight)
	assert.Equal(t, 3, client.calls)
}

func TestAnalyzeFallsBackAfterRetryExhaustion(t *testing.T) {
	client := &fakeClient{results: []fakeResult{{err: rateLimited()}}}
	svc := NewService(client, testConfig(), zerolog.Nop())

	result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	assert.Contains(t, result.MarketContext, "financial advisor")
	assert.Equal(t, 3, client.calls)
}

func TestAnalyzeDoesNotRetryTerminalFailures(t *testing.T) {
	client := &fakeClient{results: []fakeResult{
		{err: fmt.Errorf("%w: boom", domain.ErrModelRequestFailed)},
	}}
	svc := NewService(client, testConfig(), zerolog.Nop())

	result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeFallsBackOnMalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"missing field", `{"personalizedInsight": "x", "recommendations": ["a","b","c"], "marketContext": "y"}`},
		{"wrong recommendation arity", `{"personalizedInsight": "x", "riskAnalysis": "y", "recommendations": ["a","b"], "marketContext": "z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{results: []fakeResult{{content: tt.content}}}
			svc := NewService(client, testConfig(), zerolog.Nop())

			result, err := svc.Analyze(context.Background(), testAssets(), 50, domain.RiskLevelModerate)
			require.NoError(t, err)
			require.Len(t, result.Recommendations, 3)
			assert.Contains(t, result.MarketContext, "financial advisor")
		})
	}
}

func TestAnalyzeCancellationSkipsFallback(t *testing.T) {
	client := &fakeClient{results: []fakeResult{{err: rateLimited()}}}
	svc := NewService(client, Config{MaxRetries: 3, BaseDelay: time.Hour}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result, err := svc.Analyze(ctx, testAssets(), 50, domain.RiskLevelModerate)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, client.calls)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(testAssets(), 63, domain.RiskLevelModerateHigh)

	assert.Contains(t, prompt, "Risk Score: 63/100")
	assert.Contains(t, prompt, "Risk Level: Moderate-High")
	assert.Contains(t, prompt, "Bonds (Government Bond): 40.0% of portfolio, volatility: 4%, expected return: 2.5%")
	assert.Contains(t, prompt, "recommendations (array of 3 strings)")
}
