// Package handler はyieldフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/yield/domain/entity"
	"nethra_backend/internal/feature/yield/transport/http/dto"
	"nethra_backend/internal/feature/yield/usecase"
)

// YieldUsecase は収量推定のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type YieldUsecase interface {
	Estimate(q entity.YieldQuery) entity.YieldEstimate
	Options() usecase.Options
}

// YieldHandler は収量推定のHTTPリクエストを処理します。
type YieldHandler struct {
	uc YieldUsecase
}

// NewYieldHandler はYieldHandlerの新しいインスタンスを生成します。
func NewYieldHandler(uc YieldUsecase) *YieldHandler {
	return &YieldHandler{uc: uc}
}

// Estimate は入力を検証してから収量を推定します。
// シミュレーター自体は検証しないため、ここで非有限値や空文字を弾きます。
//
// エンドポイント: POST /v1/yield/estimate
func (h *YieldHandler) Estimate(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("収量推定リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "crop, soil_type, state, rainfall_mm, temperature_c and area_hectares are required"})
		return
	}
	if msg := validate(req); msg != "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msg})
		return
	}

	est := h.uc.Estimate(entity.YieldQuery{
		Crop:         strings.TrimSpace(req.Crop),
		SoilCategory: strings.TrimSpace(req.SoilType),
		RainfallMm:   *req.RainfallMm,
		TemperatureC: *req.TemperatureC,
	})

	c.JSON(http.StatusOK, dto.EstimateResponse{
		Crop:         est.Crop,
		State:        strings.TrimSpace(req.State),
		AreaHectares: *req.AreaHectares,
		Yield:        est.Yield,
		YieldText:    strconv.FormatFloat(est.Yield, 'f', 1, 64),
		Unit:         est.Unit,
		Confidence:   est.Confidence,
		Rating:       string(est.Rating),
		RatingLabel:  est.Rating.Label(),
		Advice:       est.Advice,
	})
}

// Options はフォームの選択肢を返します。
//
// エンドポイント: GET /v1/yield/options
func (h *YieldHandler) Options(c *gin.Context) {
	o := h.uc.Options()
	c.JSON(http.StatusOK, dto.OptionsResponse{
		Crops:     o.Crops,
		SoilTypes: o.SoilCategories,
		States:    o.States,
	})
}

func validate(req dto.EstimateRequest) string {
	switch {
	case strings.TrimSpace(req.Crop) == "":
		return "crop must not be blank"
	case strings.TrimSpace(req.SoilType) == "":
		return "soil_type must not be blank"
	case strings.TrimSpace(req.State) == "":
		return "state must not be blank"
	case !finite(*req.RainfallMm):
		return "rainfall_mm must be a finite number"
	case !finite(*req.TemperatureC):
		return "temperature_c must be a finite number"
	case !finite(*req.AreaHectares):
		return "area_hectares must be a finite number"
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
