package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"riskscope/internal/domain"
)

// Config holds the retry parameters for model calls
type Config struct {
	MaxRetries int           // total attempts per call, including the first
	BaseDelay  time.Duration // backoff after the n-th rate-limited attempt is BaseDelay * 2^n
}

// DefaultConfig returns the production retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Second,
	}
}

// Service is the narrative enrichment service. A nil client selects the
// deterministic fallback for every call; that decision is made once at
// construction, not re-evaluated per request.
type Service struct {
	client CompletionClient
	cfg    Config
	log    zerolog.Logger
}

// NewService creates a new advisor service. Pass a nil client when no model
// credential is configured.
func NewService(client CompletionClient, cfg Config, log zerolog.Logger) *Service {
	l := log.With().Str("service", "advisor").Logger()
	if client == nil {
		l.Info().Msg("No model credential configured, narratives use the rule-based fallback")
	}
	return &Service{client: client, cfg: cfg, log: l}
}

// Analyze produces the narrative analysis for an analyzed portfolio.
//
// Model failures are absorbed: rate limits are retried with exponential
// backoff, and any terminal failure (exhausted retries, other request errors,
// malformed responses) switches to the fallback narrative. The only error ever
// returned is the caller's own context cancellation, in which case the
// fallback is not invoked.
func (s *Service) Analyze(ctx context.Context, assets []domain.EnhancedAsset, riskScore int, riskLevel domain.RiskLevel) (*domain.AIAnalysisResult, error) {
	if s.client == nil {
		s.log.Debug().Str("source", "fallback").Msg("Narrative produced")
		return fallbackAnalysis(assets, riskScore, riskLevel), nil
	}

	content, err := s.complete(ctx, buildPrompt(assets, riskScore, riskLevel))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn().Err(err).Msg("Model analysis failed, using fallback narrative")
		return fallbackAnalysis(assets, riskScore, riskLevel), nil
	}

	result, err := parseResult(content)
	if err != nil {
		s.log.Warn().Err(err).Msg("Model response malformed, using fallback narrative")
		return fallbackAnalysis(assets, riskScore, riskLevel), nil
	}

	s.log.Debug().Str("source", "model").Msg("Narrative produced")
	return result, nil
}

// complete runs the bounded retry loop. The attempt counter is local to the
// call so concurrent requests never share retry state.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	for attempt := 1; ; attempt++ {
		content, err := s.client.Complete(ctx, prompt)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, domain.ErrModelRateLimited) || attempt >= s.cfg.MaxRetries {
			return "", err
		}

		backoff := s.cfg.BaseDelay * (1 << attempt)
		s.log.Warn().Int("attempt", attempt).Dur("backoff", backoff).Msg("Model rate limited, backing off")

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

// parseResult validates the model's JSON response: all four fields must be
// present and there must be exactly three recommendations.
func parseResult(content string) (*domain.AIAnalysisResult, error) {
	var result domain.AIAnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelResponseMalformed, err)
	}
	if result.PersonalizedInsight == "" || result.RiskAnalysis == "" || result.MarketContext == "" {
		return nil, fmt.Errorf("%w: missing required field", domain.ErrModelResponseMalformed)
	}
	if len(result.Recommendations) != 3 {
		return nil, fmt.Errorf("%w: expected 3 recommendations, got %d", domain.ErrModelResponseMalformed, len(result.Recommendations))
	}
	return &result, nil
}
