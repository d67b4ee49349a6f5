// Package usecase はfertilizerフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"nethra_backend/internal/feature/fertilizer/domain"
	"nethra_backend/internal/feature/fertilizer/domain/entity"
)

// FertilizerPredictor は外部の推論サービスから肥料名の一覧を取得します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FertilizerPredictor interface {
	PredictFertilizer(ctx context.Context, q entity.FertilizerQuery) ([]string, error)
}

// Options はフォームの選択肢です。
type Options struct {
	Crops     []string
	SoilTypes []string
}

type fertilizerUsecase struct {
	predictor FertilizerPredictor
}

// NewFertilizerUsecase はfertilizerUsecaseの新しいインスタンスを生成します。
func NewFertilizerUsecase(p FertilizerPredictor) *fertilizerUsecase {
	return &fertilizerUsecase{predictor: p}
}

// Predict は入力を検証し、推論サービスの結果をガイドで補完して返します。
func (u *fertilizerUsecase) Predict(ctx context.Context, q entity.FertilizerQuery) (*entity.FertilizerRecommendation, error) {
	q.SoilType = strings.TrimSpace(q.SoilType)
	q.CropType = strings.TrimSpace(q.CropType)
	if err := validate(q); err != nil {
		return nil, err
	}

	names, err := u.predictor.PredictFertilizer(ctx, q)
	if err != nil {
		slog.Error("肥料推論の呼び出しに失敗", "crop", q.CropType, "soil", q.SoilType, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	recs := make([]entity.RecommendedFertilizer, 0, len(names))
	for _, n := range names {
		recs = append(recs, entity.Enrich(n))
	}
	return &entity.FertilizerRecommendation{
		Recommendations: recs,
		Confidence:      entity.DefaultConfidence,
	}, nil
}

// Guide は肥料ガイドを返します。
func (u *fertilizerUsecase) Guide() []entity.GuideEntry {
	return entity.Guide()
}

// Options はフォームの選択肢を返します。
func (u *fertilizerUsecase) Options() Options {
	return Options{
		Crops:     append([]string(nil), entity.Crops...),
		SoilTypes: append([]string(nil), entity.SoilTypes...),
	}
}

func validate(q entity.FertilizerQuery) error {
	if q.SoilType == "" || q.CropType == "" {
		return fmt.Errorf("%w: soil_type and crop_type are required", domain.ErrInvalidQuery)
	}
	for name, v := range map[string]float64{
		"temperature": q.Temperature,
		"humidity":    q.Humidity,
		"moisture":    q.Moisture,
		"nitrogen":    q.Nitrogen,
		"phosphorous": q.Phosphorous,
		"potassium":   q.Potassium,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidQuery, name)
		}
	}
	return nil
}
