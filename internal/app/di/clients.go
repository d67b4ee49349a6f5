// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"nethra_backend/internal/feature/advisor/adapters/gemini"
	"nethra_backend/internal/platform/breaker"
	"nethra_backend/internal/platform/externalapi/mlspace"
	"nethra_backend/internal/platform/externalapi/plantid"
	infrahttp "nethra_backend/internal/platform/http"
	"nethra_backend/internal/platform/metrics"
	"nethra_backend/internal/shared/ratelimiter"
)

// NewMLSpaceClient creates the fertilizer / crop recommendation client with its own breaker.
func NewMLSpaceClient(m *metrics.Metrics) *mlspace.Client {
	cfg := mlspace.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	cb := breaker.New("mlspace", breaker.LoadConfig(), m)
	return mlspace.NewClient(cfg, httpClient, cb, m)
}

// NewPlantIDClient creates the plant health client. Calls are limited per minute.
func NewPlantIDClient(m *metrics.Metrics) *plantid.Client {
	cfg := plantid.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute)
	cb := breaker.New("plantid", breaker.LoadConfig(), m)
	return plantid.NewClient(cfg, httpClient, limiter, cb, m)
}

// NewGeminiAdvisor creates the cultivation tips generator.
// It returns nil without error when GEMINI_ENABLED is not true.
func NewGeminiAdvisor(ctx context.Context, m *metrics.Metrics) (*gemini.GeminiAdvisor, error) {
	cfg := gemini.LoadConfig()
	if !cfg.Enabled {
		return nil, nil
	}
	cb := breaker.New("gemini", breaker.LoadConfig(), m)
	return gemini.NewGeminiAdvisor(ctx, cfg, cb, m)
}
