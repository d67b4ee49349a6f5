// Package usecase はdiseaseフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nethra_backend/internal/feature/disease/domain"
	"nethra_backend/internal/feature/disease/domain/entity"
)

// MaxImageSize は診断画像の最大サイズ（10MB）です。
const MaxImageSize = 10 * 1024 * 1024

// HealthAssessor は植物の健康診断を外部APIに依頼します。
// result を含まない応答では domain.ErrInvalidResponse を返します。
type HealthAssessor interface {
	Assess(ctx context.Context, image []byte) (entity.HealthAssessment, error)
}

type diseaseUsecase struct {
	assessor HealthAssessor
}

// NewDiseaseUsecase はdiseaseUsecaseの新しいインスタンスを生成します。
func NewDiseaseUsecase(a HealthAssessor) *diseaseUsecase {
	return &diseaseUsecase{assessor: a}
}

// Detect は画像バイト列を診断します。
func (u *diseaseUsecase) Detect(ctx context.Context, image []byte) (*entity.Diagnosis, error) {
	if len(image) == 0 {
		return nil, domain.ErrEmptyImage
	}

	a, err := u.assessor.Assess(ctx, image)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResponse) {
			return nil, err
		}
		slog.Error("植物診断APIの呼び出しに失敗", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	d := entity.Diagnose(a)
	slog.Info("植物診断が完了", "name", d.Name, "confidence", d.Confidence, "severity", d.Severity)
	return &d, nil
}

// DetectBase64 はbase64文字列（データURLも可）の画像を診断します。
func (u *diseaseUsecase) DetectBase64(ctx context.Context, encoded string) (*entity.Diagnosis, error) {
	img, err := DecodeImage(encoded)
	if err != nil {
		return nil, err
	}
	return u.Detect(ctx, img)
}

// DecodeImage は "data:image/jpeg;base64,..." 形式の接頭辞を取り除いてデコードします。
func DecodeImage(encoded string) ([]byte, error) {
	s := strings.TrimSpace(encoded)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, domain.ErrEmptyImage
		}
		s = s[i+1:]
	}
	if s == "" {
		return nil, domain.ErrEmptyImage
	}
	if base64.StdEncoding.DecodedLen(len(s)) > MaxImageSize+3 {
		return nil, fmt.Errorf("%w: image exceeds 10MB", domain.ErrEmptyImage)
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmptyImage, err)
	}
	if len(b) == 0 {
		return nil, domain.ErrEmptyImage
	}
	return b, nil
}
