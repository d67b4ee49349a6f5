// Package usecase はcroprecフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"nethra_backend/internal/feature/croprec/domain"
	"nethra_backend/internal/feature/croprec/domain/entity"
)

// CropPredictor は外部の推論サービスから推奨作物を取得します。
type CropPredictor interface {
	RecommendCrop(ctx context.Context, q entity.CropQuery) (entity.CropPrediction, error)
}

type cropRecUsecase struct {
	predictor CropPredictor
}

// NewCropRecUsecase はcropRecUsecaseの新しいインスタンスを生成します。
func NewCropRecUsecase(p CropPredictor) *cropRecUsecase {
	return &cropRecUsecase{predictor: p}
}

// Recommend は推論結果に既定値を補い、スケール値を区分して返します。
func (u *cropRecUsecase) Recommend(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error) {
	for _, v := range []float64{q.Temperature, q.Humidity, q.Rainfall, q.Nitrogen} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: values must be finite numbers", domain.ErrInvalidQuery)
		}
	}

	p, err := u.predictor.RecommendCrop(ctx, q)
	if err != nil {
		slog.Error("作物推奨の呼び出しに失敗", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	crop := p.Crop
	if crop == "" {
		crop = entity.UnknownCrop
	}

	factors := make([]entity.ScaledFactor, 0, len(p.ScaledValues))
	for i, v := range p.ScaledValues {
		name := fmt.Sprintf("Feature %d", i+1)
		if i < len(entity.FactorNames) {
			name = entity.FactorNames[i]
		}
		factors = append(factors, entity.ScaledFactor{Name: name, Value: v, Level: entity.LevelOf(v)})
	}

	return &entity.CropRecommendation{
		Crop:       crop,
		Factors:    factors,
		Confidence: p.Confidence,
	}, nil
}
