// Package usecase はadvisorフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"nethra_backend/internal/feature/advisor/domain"
	"nethra_backend/internal/feature/advisor/domain/entity"
)

const (
	// TipsPromptTemplate は栽培アドバイスのプロンプトテンプレートです。
	TipsPromptTemplate = "You are an agronomist advising a smallholder farmer in India. " +
		"Give 3 short, practical cultivation tips for growing %s in %s. " +
		"Cover soil preparation, irrigation and fertilizer. Answer in plain text."
	// MaxNameLength は作物名・土壌名の最大文字数（rune数）です。
	MaxNameLength = 100
)

// validName は作物名・土壌名に許可される文字パターンです（結合文字を含む文字・数字・一部の記号）。
var validName = regexp.MustCompile(`^[\p{L}\p{M}\p{N} &/()\-.,]+$`)

// TipsGenerator はプロンプトからテキストを生成します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TipsGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type advisorUsecase struct {
	gen TipsGenerator
}

// NewAdvisorUsecase はadvisorUsecaseの新しいインスタンスを生成します。
func NewAdvisorUsecase(gen TipsGenerator) *advisorUsecase {
	return &advisorUsecase{gen: gen}
}

// Advise は作物と土壌の組み合わせに対する栽培アドバイスを生成します。
func (u *advisorUsecase) Advise(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
	crop = strings.TrimSpace(crop)
	soil = strings.TrimSpace(soil)
	if err := validate("crop", crop); err != nil {
		return nil, err
	}
	if err := validate("soil", soil); err != nil {
		return nil, err
	}

	summary, err := u.gen.Generate(ctx, fmt.Sprintf(TipsPromptTemplate, crop, soil))
	if err != nil {
		return nil, fmt.Errorf("%w: tips for %q on %q: %w", domain.ErrUpstream, crop, soil, err)
	}

	return &entity.CropAdvice{Crop: crop, Soil: soil, Summary: strings.TrimSpace(summary)}, nil
}

func validate(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(v) > MaxNameLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", domain.ErrInvalidInput, field, MaxNameLength)
	}
	if !validName.MatchString(v) {
		return fmt.Errorf("%w: %s contains invalid characters", domain.ErrInvalidInput, field)
	}
	return nil
}
