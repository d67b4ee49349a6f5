// Package gemini はGoogle Gemini APIを使用した栽培アドバイス生成クライアントを提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"nethra_backend/internal/feature/advisor/usecase"
	"nethra_backend/internal/platform/breaker"
	"nethra_backend/internal/platform/metrics"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	upstreamName = "gemini"
)

// errEmptyResponse は候補テキストが空だったことを示します。
var errEmptyResponse = errors.New("gemini returned no text")

// GeminiAdvisor はGoogle Gemini APIを使用して栽培アドバイスを生成します。
type GeminiAdvisor struct {
	client  *genai.Client
	cfg     Config
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// GeminiAdvisorがTipsGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.TipsGenerator = (*GeminiAdvisor)(nil)

// NewGeminiAdvisor はGeminiAdvisorの新しいインスタンスを生成します。
// APIキーが無い場合はADCを使用し、GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiAdvisor(ctx context.Context, cfg Config, cb *gobreaker.CircuitBreaker, m *metrics.Metrics) (*GeminiAdvisor, error) {
	var cc *genai.ClientConfig
	if cfg.APIKey != "" {
		cc = &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &GeminiAdvisor{client: client, cfg: cfg, cb: cb, metrics: m}, nil
}

// Generate はプロンプトからアドバイス本文を生成します。
func (g *GeminiAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	text, err := breaker.Execute(g.cb, func() (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
		if err != nil {
			return "", fmt.Errorf("gemini API request failed: %w", err)
		}
		t := resp.Text()
		if t == "" {
			return "", errEmptyResponse
		}
		return t, nil
	})
	g.metrics.ObserveUpstream(upstreamName, err)
	return text, err
}
