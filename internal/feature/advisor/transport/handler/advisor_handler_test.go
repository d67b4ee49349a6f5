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

	"nethra_backend/internal/feature/advisor/domain"
	"nethra_backend/internal/feature/advisor/domain/entity"
	"nethra_backend/internal/feature/advisor/transport/handler"
	"nethra_backend/internal/platform/breaker"
)

// mockAdvisorUsecase はAdvisorUsecaseのモック実装です。
type mockAdvisorUsecase struct {
	AdviseFunc func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error)
}

func (m *mockAdvisorUsecase) Advise(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
	return m.AdviseFunc(ctx, crop, soil)
}

func TestAdvisorHandler_Tips(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"crop":"Cotton","soil":"Black Soil"}`,
			mockFunc: func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
				return &entity.CropAdvice{Crop: crop, Soil: soil, Summary: "Sow after first rains."}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"crop":"Cotton","soil":"Black Soil","summary":"Sow after first rains."}`,
		},
		{
			name:           "missing soil",
			body:           `{"crop":"Cotton"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"crop and soil are required"}`,
		},
		{
			name: "invalid characters",
			body: `{"crop":"Cotton<script>","soil":"Black Soil"}`,
			mockFunc: func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
				return nil, fmt.Errorf("%w: crop contains invalid characters", domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid input: crop contains invalid characters"}`,
		},
		{
			name: "breaker open",
			body: `{"crop":"Cotton","soil":"Black Soil"}`,
			mockFunc: func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
				return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, breaker.ErrUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"advisor is temporarily unavailable"}`,
		},
		{
			name: "upstream failure",
			body: `{"crop":"Cotton","soil":"Black Soil"}`,
			mockFunc: func(ctx context.Context, crop, soil string) (*entity.CropAdvice, error) {
				return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, errors.New("quota"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to generate cultivation tips"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewAdvisorHandler(&mockAdvisorUsecase{AdviseFunc: tt.mockFunc})
			r := gin.New()
			r.POST("/v1/advisor/tips", h.Tips)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/advisor/tips", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
