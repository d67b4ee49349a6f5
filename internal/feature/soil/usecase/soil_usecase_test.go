package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nethra_backend/internal/feature/soil/domain"
	"nethra_backend/internal/feature/soil/domain/entity"
	"nethra_backend/internal/feature/soil/usecase"
)

// mockDecoder はImageDecoderインターフェースのモック実装です。
type mockDecoder struct {
	DecodeFunc  func(data []byte) (image.Image, error)
	DecodeCalls int
}

func (m *mockDecoder) Decode(data []byte) (image.Image, error) {
	m.DecodeCalls++
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return nil, errors.New("DecodeFunc is not implemented")
}

// solid は指定色で塗りつぶしたNRGBA画像を生成します。
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func decoderReturning(img image.Image) *mockDecoder {
	return &mockDecoder{DecodeFunc: func([]byte) (image.Image, error) { return img, nil }}
}

func TestSoilUsecase_Classify(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		img            image.Image
		wantLabel      entity.Label
		wantConfidence int
		wantSample     entity.AverageColor
	}{
		{
			name:           "success: dark image is black soil",
			img:            solid(4, 4, color.NRGBA{R: 30, G: 25, B: 20, A: 255}),
			wantLabel:      entity.BlackSoil,
			wantConfidence: 94,
			wantSample:     entity.AverageColor{R: 30, G: 25, B: 20},
		},
		{
			name:           "success: reddish image is red soil",
			img:            solid(3, 2, color.NRGBA{R: 160, G: 80, B: 50, A: 255}),
			wantLabel:      entity.RedSoil,
			wantConfidence: 91,
			wantSample:     entity.AverageColor{R: 160, G: 80, B: 50},
		},
		{
			name:           "success: grey image falls back to alluvial",
			img:            solid(2, 2, color.NRGBA{R: 120, G: 120, B: 120, A: 255}),
			wantLabel:      entity.AlluvialSoil,
			wantConfidence: 89,
			wantSample:     entity.AverageColor{R: 120, G: 120, B: 120},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := usecase.NewSoilUsecase(decoderReturning(tc.img))

			got, err := uc.Classify(ctx, []byte("image-bytes"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Equal(t, tc.wantConfidence, got.Profile.Confidence)
			assert.Equal(t, tc.wantSample, got.Sample)
		})
	}
}

func TestSoilUsecase_Classify_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty data is a decode error without calling decoder", func(t *testing.T) {
		dec := &mockDecoder{}
		uc := usecase.NewSoilUsecase(dec)

		_, err := uc.Classify(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDecode)
		assert.Equal(t, 0, dec.DecodeCalls)
	})

	t.Run("error: decoder failure propagates", func(t *testing.T) {
		dec := &mockDecoder{DecodeFunc: func([]byte) (image.Image, error) {
			return nil, fmt.Errorf("%w: bad header", domain.ErrDecode)
		}}
		uc := usecase.NewSoilUsecase(dec)

		_, err := uc.Classify(ctx, []byte("garbage"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDecode)
		assert.Equal(t, 1, dec.DecodeCalls)
	})

	t.Run("error: zero pixel image", func(t *testing.T) {
		uc := usecase.NewSoilUsecase(decoderReturning(image.NewNRGBA(image.Rect(0, 0, 0, 0))))

		_, err := uc.Classify(ctx, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("error: cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		uc := usecase.NewSoilUsecase(decoderReturning(solid(1, 1, color.NRGBA{A: 255})))

		_, err := uc.Classify(cctx, []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// TestSoilUsecase_Classify_Idempotent は同じ入力で同じ結果が返ることを検証します。
func TestSoilUsecase_Classify_Idempotent(t *testing.T) {
	uc := usecase.NewSoilUsecase(decoderReturning(solid(5, 5, color.NRGBA{R: 200, G: 100, B: 90, A: 255})))

	first, err := uc.Classify(context.Background(), []byte("x"))
	require.NoError(t, err)
	second, err := uc.Classify(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAverageColorOf(t *testing.T) {
	t.Parallel()

	t.Run("truncates toward zero", func(t *testing.T) {
		t.Parallel()
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 10, B: 255, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 101, G: 11, B: 0, A: 255})

		avg, err := usecase.AverageColorOf(img)
		require.NoError(t, err)
		assert.Equal(t, entity.AverageColor{R: 50, G: 10, B: 127}, avg)
	})

	t.Run("uses unpremultiplied channels", func(t *testing.T) {
		t.Parallel()
		img := solid(2, 2, color.NRGBA{R: 200, G: 40, B: 20, A: 128})

		avg, err := usecase.AverageColorOf(img)
		require.NoError(t, err)
		assert.Equal(t, entity.AverageColor{R: 200, G: 40, B: 20}, avg)
	})

	t.Run("fully transparent pixels count as black", func(t *testing.T) {
		t.Parallel()
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

		avg, err := usecase.AverageColorOf(img)
		require.NoError(t, err)
		assert.Equal(t, entity.AverageColor{R: 100, G: 100, B: 100}, avg)
	})

	t.Run("non-zero origin bounds", func(t *testing.T) {
		t.Parallel()
		full := solid(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		sub := full.SubImage(image.Rect(2, 2, 4, 4))

		avg, err := usecase.AverageColorOf(sub)
		require.NoError(t, err)
		assert.Equal(t, entity.AverageColor{R: 10, G: 20, B: 30}, avg)
	})
}

func TestSoilUsecase_Profiles(t *testing.T) {
	uc := usecase.NewSoilUsecase(&mockDecoder{})

	profiles := uc.Profiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, "Black Soil (Regur)", profiles[0].Type)
	assert.Equal(t, "Alluvial Soil", profiles[1].Type)
	assert.Equal(t, "Red Soil", profiles[2].Type)
}
