package risk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"riskscope/internal/domain"
)

// maxConcurrentAnalyses bounds AnalyzeMany parallelism
const maxConcurrentAnalyses = 4

// Service is the portfolio analysis facade. It validates input, computes the
// risk score and level, and annotates every asset with its derived fields.
// Safe for concurrent use; it holds only immutable configuration.
type Service struct {
	cfg   Config
	delay time.Duration
	log   zerolog.Logger
}

// NewService creates a new analysis service. The delay stands in for an
// eventual remote computation boundary and is awaited per call, so concurrent
// callers are not serialized behind one another.
func NewService(cfg Config, delay time.Duration, log zerolog.Logger) *Service {
	return &Service{
		cfg:   cfg,
		delay: delay,
		log:   log.With().Str("service", "risk").Logger(),
	}
}

// Analyze computes the full PortfolioMetrics for a portfolio.
//
// It fails with domain.ErrInvalidPortfolio when the asset list is empty or the
// total value is not positive; percentages are never computed against a zero
// denominator. Input order is preserved in the result.
func (s *Service) Analyze(ctx context.Context, assets []domain.Asset) (*domain.PortfolioMetrics, error) {
	total := TotalValue(assets)
	if len(assets) == 0 || total <= 0 {
		return nil, fmt.Errorf("%w: %d assets, total value %.2f", domain.ErrInvalidPortfolio, len(assets), total)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	concentration := s.cfg.ConcentrationScore(assets)
	volatility := s.cfg.VolatilityScore(assets)
	score := s.cfg.CombineScores(concentration, volatility)
	level := s.cfg.LevelFor(score)

	enhanced := make([]domain.EnhancedAsset, len(assets))
	for i, a := range assets {
		pct := a.Value / total * 100
		enhanced[i] = domain.EnhancedAsset{
			Asset:      a,
			Percentage: pct,
			Insight:    s.cfg.InsightFor(a),
			Suggestion: s.cfg.SuggestionFor(a, pct),
		}
	}

	s.log.Debug().
		Int("assets", len(assets)).
		Float64("concentration", concentration).
		Float64("volatility", volatility).
		Int("risk_score", score).
		Str("risk_level", string(level)).
		Msg("Portfolio analyzed")

	return &domain.PortfolioMetrics{
		TotalValue: total,
		RiskScore:  score,
		RiskLevel:  level,
		Comment:    s.cfg.Comment(score, concentration, assets),
		Assets:     enhanced,
	}, nil
}

// AnalyzeMany analyzes several named portfolios concurrently with bounded
// parallelism. Any invalid portfolio fails the whole batch.
func (s *Service) AnalyzeMany(ctx context.Context, portfolios map[string][]domain.Asset) (map[string]*domain.PortfolioMetrics, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)

	var mu sync.Mutex
	results := make(map[string]*domain.PortfolioMetrics, len(portfolios))

	for name, assets := range portfolios {
		name, assets := name, assets
		g.Go(func() error {
			metrics, err := s.Analyze(ctx, assets)
			if err != nil {
				return fmt.Errorf("portfolio %q: %w", name, err)
			}
			mu.Lock()
			results[name] = metrics
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
