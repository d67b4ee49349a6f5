// Package handler はadvisorフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/advisor/domain"
	"nethra_backend/internal/feature/advisor/domain/entity"
	"nethra_backend/internal/feature/advisor/transport/http/dto"
	"nethra_backend/internal/platform/breaker"
)

// AdvisorUsecase は栽培アドバイスのユースケースインターフェースです。
type AdvisorUsecase interface {
	Advise(ctx context.Context, crop, soil string) (*entity.CropAdvice, error)
}

// AdvisorHandler は栽培アドバイスのHTTPリクエストを処理します。
type AdvisorHandler struct {
	uc AdvisorUsecase
}

// NewAdvisorHandler はAdvisorHandlerの新しいインスタンスを生成します。
func NewAdvisorHandler(uc AdvisorUsecase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

// Tips は作物と土壌に対する栽培アドバイスを生成します。
//
// エンドポイント: POST /v1/advisor/tips
// Content-Type: application/json
func (h *AdvisorHandler) Tips(c *gin.Context) {
	var req dto.TipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("アドバイスリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "crop and soil are required"})
		return
	}

	advice, err := h.uc.Advise(c.Request.Context(), req.Crop, req.Soil)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, breaker.ErrUnavailable):
			slog.Warn("アドバイス生成を遮断中", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "advisor is temporarily unavailable"})
		default:
			slog.Error("アドバイス生成に失敗", "error", err, "crop", req.Crop, "soil", req.Soil)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to generate cultivation tips"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TipsResponse{Crop: advice.Crop, Soil: advice.Soil, Summary: advice.Summary})
}
