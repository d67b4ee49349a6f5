package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nethra_backend/internal/feature/disease/domain"
	"nethra_backend/internal/feature/disease/domain/entity"
)

type mockAssessor struct {
	assessment entity.HealthAssessment
	err        error
	got        []byte
	calls      int
}

func (m *mockAssessor) Assess(ctx context.Context, image []byte) (entity.HealthAssessment, error) {
	m.calls++
	m.got = image
	return m.assessment, m.err
}

func TestDiseaseUsecase_Detect(t *testing.T) {
	t.Parallel()

	a := &mockAssessor{assessment: entity.HealthAssessment{
		Suggestions: []entity.DiseaseSuggestion{{Name: "Late blight", Probability: 0.9}},
	}}
	uc := NewDiseaseUsecase(a)

	d, err := uc.Detect(context.Background(), []byte{0xff, 0xd8})

	require.NoError(t, err)
	assert.Equal(t, "Late blight", d.Name)
	assert.Equal(t, 90, d.Confidence)
	assert.Equal(t, entity.SeverityHigh, d.Severity)
	assert.Equal(t, []byte{0xff, 0xd8}, a.got)
}

func TestDiseaseUsecase_Detect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		image     []byte
		assessErr error
		wantErr   error
		wantCalls int
	}{
		{"empty image", nil, nil, domain.ErrEmptyImage, 0},
		{"invalid response passes through", []byte{1}, fmt.Errorf("plant.id: %w", domain.ErrInvalidResponse), domain.ErrInvalidResponse, 1},
		{"upstream failure wrapped", []byte{1}, errors.New("server responded with 401"), domain.ErrUpstream, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := &mockAssessor{err: tt.assessErr}
			_, err := NewDiseaseUsecase(a).Detect(context.Background(), tt.image)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, a.calls)
		})
	}
}

func TestDecodeImage(t *testing.T) {
	t.Parallel()

	raw := []byte("jpeg-bytes")
	enc := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"plain base64", enc, raw, false},
		{"data url", "data:image/jpeg;base64," + enc, raw, false},
		{"surrounding whitespace", "  " + enc + "\n", raw, false},
		{"empty", "", nil, true},
		{"data url without payload", "data:image/png;base64,", nil, true},
		{"data url without comma", "data:image/png;base64", nil, true},
		{"not base64", "!!!not-base64!!!", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeImage(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrEmptyImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiseaseUsecase_DetectBase64(t *testing.T) {
	t.Parallel()

	a := &mockAssessor{}
	d, err := NewDiseaseUsecase(a).DetectBase64(context.Background(), base64.StdEncoding.EncodeToString([]byte("x")))

	require.NoError(t, err)
	assert.Equal(t, "Healthy Plant", d.Name)
	assert.Equal(t, []byte("x"), a.got)

	_, err = NewDiseaseUsecase(a).DetectBase64(context.Background(), "%%%")
	assert.ErrorIs(t, err, domain.ErrEmptyImage)
}
