// Package main is the entry point for the riskscope portfolio risk engine.
// It wires the scoring engine and the AI advisor behind a small JSON API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riskscope/internal/advisor"
	"riskscope/internal/config"
	"riskscope/internal/risk"
	"riskscope/internal/server"
	"riskscope/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting riskscope")

	// Scoring engine with configured level thresholds
	riskCfg := risk.DefaultConfig()
	riskCfg.ThresholdLow = cfg.RiskThresholdLow
	riskCfg.ThresholdModerate = cfg.RiskThresholdModerate
	riskCfg.ThresholdHigh = cfg.RiskThresholdHigh
	riskSvc := risk.NewService(riskCfg, cfg.AnalysisDelay, log)

	// Narrative advisor. Without a credential the client stays nil and the
	// advisor runs in fallback-only mode for the life of the process.
	var client advisor.CompletionClient
	if cfg.OpenAIAPIKey != "" {
		client = advisor.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
		log.Info().Str("model", cfg.OpenAIModel).Msg("Model client configured")
	}
	advisorSvc := advisor.NewService(client, advisor.Config{
		MaxRetries: cfg.AIMaxRetries,
		BaseDelay:  cfg.AIBaseDelay,
	}, log)

	srv := server.New(server.Config{
		Log:     log,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,
		Risk:    riskSvc,
		Advisor: advisorSvc,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}
