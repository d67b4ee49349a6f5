package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"nethra_backend/internal/feature/croprec/domain"
	"nethra_backend/internal/feature/croprec/domain/entity"
	"nethra_backend/internal/feature/croprec/transport/handler"
)

type mockCropRecUsecase struct {
	RecommendFunc func(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error)
}

func (m *mockCropRecUsecase) Recommend(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error) {
	return m.RecommendFunc(ctx, q)
}

func TestCropRecHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{"temperature":25,"humidity":80,"rainfall":200,"nitrogen":0}`

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: body,
			mockFunc: func(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error) {
				assert.Equal(t, entity.CropQuery{Temperature: 25, Humidity: 80, Rainfall: 200, Nitrogen: 0}, q)
				return &entity.CropRecommendation{
					Crop:       "rice",
					Factors:    []entity.ScaledFactor{{Name: "Temperature", Value: -0.8, Level: entity.LevelVeryLow}},
					Confidence: 0.9,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"crop_recommendation":"rice","scaled_values":[{"name":"Temperature","value":-0.8,"level":"very_low"}],"confidence":0.9}`,
		},
		{
			name:           "missing nitrogen",
			body:           `{"temperature":25,"humidity":80,"rainfall":200}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"temperature, humidity, rainfall and nitrogen are required"}`,
		},
		{
			name: "invalid query",
			body: body,
			mockFunc: func(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error) {
				return nil, fmt.Errorf("%w: values must be finite numbers", domain.ErrInvalidQuery)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid crop recommendation query: values must be finite numbers"}`,
		},
		{
			name: "upstream failure",
			body: body,
			mockFunc: func(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error) {
				return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, errors.New("server responded with 500"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to get crop recommendation"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewCropRecHandler(&mockCropRecUsecase{RecommendFunc: tt.mockFunc})
			router := gin.New()
			router.POST("/crops/recommend", h.Recommend)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/crops/recommend", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
