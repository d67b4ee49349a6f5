// Package handler はfertilizerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/fertilizer/domain"
	"nethra_backend/internal/feature/fertilizer/domain/entity"
	"nethra_backend/internal/feature/fertilizer/transport/http/dto"
	"nethra_backend/internal/feature/fertilizer/usecase"
)

// FertilizerUsecase は肥料推奨のユースケースインターフェースです。
type FertilizerUsecase interface {
	Predict(ctx context.Context, q entity.FertilizerQuery) (*entity.FertilizerRecommendation, error)
	Guide() []entity.GuideEntry
	Options() usecase.Options
}

// FertilizerHandler は肥料推奨のHTTPリクエストを処理します。
type FertilizerHandler struct {
	uc FertilizerUsecase
}

// NewFertilizerHandler はFertilizerHandlerの新しいインスタンスを生成します。
func NewFertilizerHandler(uc FertilizerUsecase) *FertilizerHandler {
	return &FertilizerHandler{uc: uc}
}

// Predict は環境条件と土壌養分から肥料を推奨します。
//
// エンドポイント: POST /v1/fertilizer/predict
func (h *FertilizerHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("肥料推奨リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "please fill in all fields"})
		return
	}

	rec, err := h.uc.Predict(c.Request.Context(), entity.FertilizerQuery{
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Moisture:    *req.Moisture,
		SoilType:    req.SoilType,
		CropType:    req.CropType,
		Nitrogen:    *req.Nitrogen,
		Phosphorous: *req.Phosphorous,
		Potassium:   *req.Potassium,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUpstream):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to predict fertilizer requirements"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	out := make([]dto.FertilizerResponse, 0, len(rec.Recommendations))
	for _, r := range rec.Recommendations {
		out = append(out, dto.FertilizerResponse{
			Name:        r.Name,
			Description: r.Description,
			Benefits:    r.Benefits,
			InGuide:     r.InGuide,
		})
	}
	c.JSON(http.StatusOK, dto.PredictResponse{Recommendations: out, Confidence: rec.Confidence})
}

// Guide は肥料ガイドとフォームの選択肢を返します。
//
// エンドポイント: GET /v1/fertilizer/guide
func (h *FertilizerHandler) Guide(c *gin.Context) {
	g := h.uc.Guide()
	entries := make([]dto.GuideEntryResponse, 0, len(g))
	for _, e := range g {
		entries = append(entries, dto.GuideEntryResponse{Name: e.Name, Description: e.Description, Benefits: e.Benefits})
	}
	o := h.uc.Options()
	c.JSON(http.StatusOK, dto.GuideResponse{Fertilizers: entries, Crops: o.Crops, SoilTypes: o.SoilTypes})
}
