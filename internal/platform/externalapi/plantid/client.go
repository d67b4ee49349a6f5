package plantid

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"nethra_backend/internal/feature/disease/domain"
	"nethra_backend/internal/feature/disease/domain/entity"
	"nethra_backend/internal/feature/disease/usecase"
	"nethra_backend/internal/platform/breaker"
	"nethra_backend/internal/platform/externalapi/plantid/dto"
	infrahttp "nethra_backend/internal/platform/http"
	"nethra_backend/internal/platform/metrics"
	"nethra_backend/internal/shared/ratelimiter"
)

const (
	upstreamName = "plantid"
	details      = "local_name,description,treatment,classification,common_names,cause"
)

// Client はplant.idの健康診断APIを呼び出すHealthAssessor実装です。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.Limiter
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// ClientがHealthAssessorを実装していることをコンパイル時に検証します。
var _ usecase.HealthAssessor = (*Client)(nil)

// NewClient はClientの新しいインスタンスを生成します。limiter, cb, m はnilでも動作します。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.Limiter, cb *gobreaker.CircuitBreaker, m *metrics.Metrics) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter, cb: cb, metrics: m}
}

// Assess は画像をJPEGのデータURLとして送信し、健康診断の結果を返します。
// 応答に result が無い場合は domain.ErrInvalidResponse を返します。
func (c *Client) Assess(ctx context.Context, image []byte) (entity.HealthAssessment, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return entity.HealthAssessment{}, err
		}
	}

	body := dto.HealthAssessmentRequest{
		Images: []string{"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)},
		Health: "only",
	}
	header := http.Header{}
	header.Set("Api-Key", c.cfg.APIKey)
	url := fmt.Sprintf("%s/health_assessment?details=%s", c.cfg.BaseURL, details)

	res, err := breaker.Execute(c.cb, func() (dto.HealthAssessmentResponse, error) {
		var out dto.HealthAssessmentResponse
		err := infrahttp.DoJSON(ctx, c.client, http.MethodPost, url, header, body, &out)
		return out, err
	})
	c.metrics.ObserveUpstream(upstreamName, err)
	if err != nil {
		return entity.HealthAssessment{}, err
	}

	return toAssessment(res)
}

func toAssessment(res dto.HealthAssessmentResponse) (entity.HealthAssessment, error) {
	if res.Result == nil {
		return entity.HealthAssessment{}, fmt.Errorf("plant.id: %w", domain.ErrInvalidResponse)
	}

	var out entity.HealthAssessment
	if res.Result.IsPlant != nil {
		out.IsPlantProbability = res.Result.IsPlant.Probability
	}
	if res.Result.Disease == nil {
		return out, nil
	}

	for _, s := range res.Result.Disease.Suggestions {
		sg := entity.DiseaseSuggestion{
			Name:        s.Name,
			Probability: s.Probability,
			Description: s.Details.DescriptionText(),
		}
		if s.Details != nil && s.Details.Treatment != nil {
			sg.Treatment = s.Details.Treatment.Chemical
		}
		out.Suggestions = append(out.Suggestions, sg)
	}
	return out, nil
}
