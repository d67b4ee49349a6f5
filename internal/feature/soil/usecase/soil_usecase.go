// Package usecase はsoilフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"nethra_backend/internal/feature/soil/domain"
	"nethra_backend/internal/feature/soil/domain/entity"
)

const (
	// MaxImageSize は土壌画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// ImageDecoder は画像バイト列をピクセルバッファにデコードします。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ImageDecoder interface {
	// Decode は失敗時に domain.ErrDecode をラップしたエラーを返します。
	Decode(data []byte) (image.Image, error)
}

// soilUsecase は土壌画像の色分類を提供します。
type soilUsecase struct {
	decoder ImageDecoder
}

// NewSoilUsecase はsoilUsecaseの新しいインスタンスを生成します。
func NewSoilUsecase(d ImageDecoder) *soilUsecase {
	return &soilUsecase{decoder: d}
}

// Classify は画像の平均色から土壌タイプを判定し、固定プロファイルを返します。
// デコードに失敗した場合は domain.ErrDecode を返し、リトライはしません。
func (u *soilUsecase) Classify(ctx context.Context, imageData []byte) (*entity.SoilAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty: %w", domain.ErrDecode)
	}

	img, err := u.decoder.Decode(imageData)
	if err != nil {
		return nil, err
	}

	avg, err := AverageColorOf(img)
	if err != nil {
		return nil, err
	}

	label := entity.Classify(avg)
	profile, ok := entity.ProfileFor(label)
	if !ok {
		// Classify とテーブルは常に対応している
		return nil, fmt.Errorf("no soil profile for label %q", label)
	}

	return &entity.SoilAnalysis{Sample: avg, Label: label, Profile: profile}, nil
}

// Profiles はすべての土壌プロファイルをテーブル順に返します。
func (u *soilUsecase) Profiles() []entity.SoilProfile {
	labels := entity.Labels()
	out := make([]entity.SoilProfile, 0, len(labels))
	for _, l := range labels {
		if p, ok := entity.ProfileFor(l); ok {
			out = append(out, p)
		}
	}
	return out
}

// AverageColorOf は全ピクセルの非乗算RGBAチャンネルの平均を整数除算で求めます。
// ピクセルが1つもない画像は domain.ErrDecode になります。
func AverageColorOf(img image.Image) (entity.AverageColor, error) {
	b := img.Bounds()
	count := uint64(b.Dx()) * uint64(b.Dy())
	if b.Empty() || count == 0 {
		return entity.AverageColor{}, fmt.Errorf("image has no pixels: %w", domain.ErrDecode)
	}

	var r, g, bl uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r += uint64(c.R)
			g += uint64(c.G)
			bl += uint64(c.B)
		}
	}

	return entity.AverageColor{
		R: int(r / count),
		G: int(g / count),
		B: int(bl / count),
	}, nil
}
