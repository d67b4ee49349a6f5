// Package handler はcroprecフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/croprec/domain"
	"nethra_backend/internal/feature/croprec/domain/entity"
	"nethra_backend/internal/feature/croprec/transport/http/dto"
)

// CropRecUsecase は作物推奨のユースケースインターフェースです。
type CropRecUsecase interface {
	Recommend(ctx context.Context, q entity.CropQuery) (*entity.CropRecommendation, error)
}

// CropRecHandler は作物推奨のHTTPリクエストを処理します。
type CropRecHandler struct {
	uc CropRecUsecase
}

// NewCropRecHandler はCropRecHandlerの新しいインスタンスを生成します。
func NewCropRecHandler(uc CropRecUsecase) *CropRecHandler {
	return &CropRecHandler{uc: uc}
}

// Recommend は気象条件と窒素量から作物を推奨します。
//
// エンドポイント: POST /v1/crops/recommend
func (h *CropRecHandler) Recommend(c *gin.Context) {
	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("作物推奨リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "temperature, humidity, rainfall and nitrogen are required"})
		return
	}

	rec, err := h.uc.Recommend(c.Request.Context(), entity.CropQuery{
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Rainfall:    *req.Rainfall,
		Nitrogen:    *req.Nitrogen,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUpstream):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to get crop recommendation"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	factors := make([]dto.FactorResponse, 0, len(rec.Factors))
	for _, f := range rec.Factors {
		factors = append(factors, dto.FactorResponse{Name: f.Name, Value: f.Value, Level: string(f.Level)})
	}
	c.JSON(http.StatusOK, dto.RecommendResponse{
		CropRecommendation: rec.Crop,
		ScaledValues:       factors,
		Confidence:         rec.Confidence,
	})
}
