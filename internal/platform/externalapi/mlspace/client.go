package mlspace

import (
	"context"
	"net/http"

	"github.com/sony/gobreaker"

	cropentity "nethra_backend/internal/feature/croprec/domain/entity"
	cropusecase "nethra_backend/internal/feature/croprec/usecase"
	fertentity "nethra_backend/internal/feature/fertilizer/domain/entity"
	fertusecase "nethra_backend/internal/feature/fertilizer/usecase"
	"nethra_backend/internal/platform/breaker"
	"nethra_backend/internal/platform/externalapi/mlspace/dto"
	infrahttp "nethra_backend/internal/platform/http"
	"nethra_backend/internal/platform/metrics"
)

const upstreamName = "mlspace"

// Client は推論Spaceを呼び出す肥料・作物推奨の実装です。
// 両エンドポイントは同じSpaceで動くため、1つのブレーカーを共有します。
type Client struct {
	cfg     Config
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// ClientがFertilizerPredictorとCropPredictorを実装していることをコンパイル時に検証します。
var (
	_ fertusecase.FertilizerPredictor = (*Client)(nil)
	_ cropusecase.CropPredictor       = (*Client)(nil)
)

// NewClient はClientの新しいインスタンスを生成します。cbとmはnilでも動作します。
func NewClient(cfg Config, client *http.Client, cb *gobreaker.CircuitBreaker, m *metrics.Metrics) *Client {
	return &Client{cfg: cfg, client: client, cb: cb, metrics: m}
}

// PredictFertilizer は推奨肥料名の一覧を返します。fertilizer_predictionが無い場合は空です。
func (c *Client) PredictFertilizer(ctx context.Context, q fertentity.FertilizerQuery) ([]string, error) {
	body := dto.FertilizerRequest{
		Temperature: q.Temperature,
		Humidity:    q.Humidity,
		Moisture:    q.Moisture,
		SoilType:    q.SoilType,
		CropType:    q.CropType,
		Nitrogen:    q.Nitrogen,
		Phosphorous: q.Phosphorous,
		Potassium:   q.Potassium,
	}

	res, err := breaker.Execute(c.cb, func() (dto.FertilizerResponse, error) {
		var out dto.FertilizerResponse
		err := infrahttp.DoJSON(ctx, c.client, http.MethodPost, c.cfg.BaseURL+"/predict-fertilizer", nil, body, &out)
		return out, err
	})
	c.metrics.ObserveUpstream(upstreamName, err)
	if err != nil {
		return nil, err
	}

	if res.FertilizerPrediction == nil {
		return []string{}, nil
	}
	return res.FertilizerPrediction, nil
}

// RecommendCrop は推奨作物とスケール済み入力値（先頭行）を返します。
func (c *Client) RecommendCrop(ctx context.Context, q cropentity.CropQuery) (cropentity.CropPrediction, error) {
	body := dto.CropRequest{
		Temperature: q.Temperature,
		Humidity:    q.Humidity,
		Rainfall:    q.Rainfall,
		Nitrogen:    q.Nitrogen,
	}

	res, err := breaker.Execute(c.cb, func() (dto.CropResponse, error) {
		var out dto.CropResponse
		err := infrahttp.DoJSON(ctx, c.client, http.MethodPost, c.cfg.BaseURL+"/predict-new-model", nil, body, &out)
		return out, err
	})
	c.metrics.ObserveUpstream(upstreamName, err)
	if err != nil {
		return cropentity.CropPrediction{}, err
	}

	var scaled []float64
	if len(res.ScaledValues) > 0 {
		scaled = res.ScaledValues[0]
	}
	return cropentity.CropPrediction{
		Crop:         res.CropRecommendation,
		ScaledValues: scaled,
		Confidence:   res.Confidence,
	}, nil
}
