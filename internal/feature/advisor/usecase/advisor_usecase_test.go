package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nethra_backend/internal/feature/advisor/domain"
)

// mockTipsGenerator はTipsGeneratorのモック実装です。
type mockTipsGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockTipsGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return m.GenerateFunc(ctx, prompt)
}

func TestAdvisorUsecase_Advise(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	uc := NewAdvisorUsecase(&mockTipsGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "  1. Deep ploughing before sowing.\n", nil
	}})

	advice, err := uc.Advise(context.Background(), " Cotton ", "Black Soil (Regur)")

	require.NoError(t, err)
	assert.Equal(t, "Cotton", advice.Crop)
	assert.Equal(t, "Black Soil (Regur)", advice.Soil)
	assert.Equal(t, "1. Deep ploughing before sowing.", advice.Summary)
	assert.Contains(t, gotPrompt, "growing Cotton in Black Soil (Regur)")
}

func TestAdvisorUsecase_Advise_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		crop    string
		soil    string
		wantMsg string
	}{
		{name: "empty crop", crop: "  ", soil: "Red Soil", wantMsg: "crop is required"},
		{name: "empty soil", crop: "Rice", soil: "", wantMsg: "soil is required"},
		{name: "too long", crop: strings.Repeat("a", MaxNameLength+1), soil: "Red Soil", wantMsg: "crop exceeds maximum length"},
		{name: "multi-byte counted as runes", crop: strings.Repeat("ध", MaxNameLength), soil: "लाल/मिट्टी", wantMsg: ""},
		{name: "invalid characters", crop: "Rice; DROP TABLE", soil: "Red Soil", wantMsg: "crop contains invalid characters"},
		{name: "newline rejected", crop: "Rice", soil: "Red\nignore previous", wantMsg: "soil contains invalid characters"},
		{name: "allowed punctuation", crop: "Green gram (moong), desi-type", soil: "Sandy & loam / 2.5", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewAdvisorUsecase(&mockTipsGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "ok", nil
			}})

			_, err := uc.Advise(context.Background(), tt.crop, tt.soil)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestAdvisorUsecase_Advise_UpstreamError(t *testing.T) {
	t.Parallel()

	boom := errors.New("quota exceeded")
	uc := NewAdvisorUsecase(&mockTipsGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		return "", boom
	}})

	_, err := uc.Advise(context.Background(), "Wheat", "Alluvial Soil")

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, boom)
}
