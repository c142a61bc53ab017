package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"riskscope/internal/advisor"
	"riskscope/internal/domain"
	"riskscope/internal/risk"
)

// PortfolioHandlers handles portfolio analysis HTTP requests
type PortfolioHandlers struct {
	risk    *risk.Service
	advisor *advisor.Service
	log     zerolog.Logger
}

// NewPortfolioHandlers creates a new portfolio handlers instance
func NewPortfolioHandlers(riskSvc *risk.Service, advisorSvc *advisor.Service, log zerolog.Logger) *PortfolioHandlers {
	return &PortfolioHandlers{
		risk:    riskSvc,
		advisor: advisorSvc,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// RegisterRoutes registers all portfolio analysis routes
func (h *PortfolioHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Post("/analyze", h.HandleAnalyze)
		r.Post("/review", h.HandleReview)
		r.Post("/narrative", h.HandleNarrative)
	})
}

type analyzeRequest struct {
	Assets []domain.Asset `json:"assets"`
}

type narrativeRequest struct {
	Assets    []domain.EnhancedAsset `json:"assets"`
	RiskScore int                    `json:"riskScore"`
	RiskLevel domain.RiskLevel       `json:"riskLevel"`
}

type reviewResponse struct {
	Metrics    *domain.PortfolioMetrics `json:"metrics"`
	AIAnalysis *domain.AIAnalysisResult `json:"aiAnalysis"`
}

// HandleAnalyze handles POST /api/portfolio/analyze
func (h *PortfolioHandlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	metrics, err := h.risk.Analyze(r.Context(), req.Assets)
	if err != nil {
		h.handleAnalysisError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, metrics)
}

// HandleReview handles POST /api/portfolio/review: full analysis followed by
// narrative enrichment, the engine's end-to-end flow.
func (h *PortfolioHandlers) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	metrics, err := h.risk.Analyze(r.Context(), req.Assets)
	if err != nil {
		h.handleAnalysisError(w, r, err)
		return
	}

	analysis, err := h.advisor.Analyze(r.Context(), metrics.Assets, metrics.RiskScore, metrics.RiskLevel)
	if err != nil {
		// Only cancellation surfaces here; the advisor absorbs model failures.
		h.handleAnalysisError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, reviewResponse{Metrics: metrics, AIAnalysis: analysis})
}

// HandleNarrative handles POST /api/portfolio/narrative for callers that
// already hold an analysis result.
func (h *PortfolioHandlers) HandleNarrative(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.advisor.Analyze(r.Context(), req.Assets, req.RiskScore, req.RiskLevel)
	if err != nil {
		h.handleAnalysisError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, analysis)
}

func (h *PortfolioHandlers) handleAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPortfolio):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; nothing useful to write.
		h.log.Debug().Err(err).Msg("Analysis request cancelled")
	default:
		h.log.Error().Err(err).Msg("Analysis failed")
		h.writeError(w, http.StatusInternalServerError, "Analysis failed")
	}
}

func (h *PortfolioHandlers) writeData(w http.ResponseWriter, status int, data interface{}) {
	response := map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"analysis_id": uuid.NewString(),
			"timestamp":   time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, status, response)
}

func (h *PortfolioHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"error": message,
	})
}

func (h *PortfolioHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
