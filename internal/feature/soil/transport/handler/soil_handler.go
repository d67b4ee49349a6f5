// Package handler はsoilフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/soil/domain"
	"nethra_backend/internal/feature/soil/domain/entity"
	"nethra_backend/internal/feature/soil/transport/http/dto"
	"nethra_backend/internal/feature/soil/usecase"
)

// SoilUsecase は土壌分類のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SoilUsecase interface {
	Classify(ctx context.Context, imageData []byte) (*entity.SoilAnalysis, error)
	Profiles() []entity.SoilProfile
}

// SoilHandler は土壌分類のHTTPリクエストを処理します。
type SoilHandler struct {
	uc SoilUsecase
}

// NewSoilHandler はSoilHandlerの新しいインスタンスを生成します。
func NewSoilHandler(uc SoilUsecase) *SoilHandler {
	return &SoilHandler{uc: uc}
}

// Classify はアップロードされた土壌画像を色で分類します。
//
// エンドポイント: POST /v1/soil/classify
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *SoilHandler) Classify(c *gin.Context) {
	imageData, filename, err := api.ReadFormFile(c, "image", usecase.MaxImageSize)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrFileMissing):
			slog.Warn("土壌画像の取得に失敗", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		case errors.Is(err, api.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: "image exceeds 10MB"})
		default:
			slog.Error("土壌画像の読み取りに失敗", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		}
		return
	}

	analysis, err := h.uc.Classify(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, domain.ErrDecode) {
			slog.Warn("土壌画像のデコードに失敗", "error", err, "filename", filename)
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "image could not be decoded"})
			return
		}
		slog.Error("土壌分類に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "soil classification failed"})
		return
	}

	slog.Info("土壌分類完了",
		"label", analysis.Label,
		"r", analysis.Sample.R, "g", analysis.Sample.G, "b", analysis.Sample.B,
	)
	c.JSON(http.StatusOK, dto.SoilAnalysisResponse{
		Label: string(analysis.Label),
		AverageColor: dto.AverageColorResponse{
			R: analysis.Sample.R,
			G: analysis.Sample.G,
			B: analysis.Sample.B,
		},
		Profile: toProfileResponse(analysis.Profile),
	})
}

// Profiles は3種類の土壌プロファイルを返します。
//
// エンドポイント: GET /v1/soil/profiles
func (h *SoilHandler) Profiles(c *gin.Context) {
	profiles := h.uc.Profiles()
	out := make([]dto.SoilProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func toProfileResponse(p entity.SoilProfile) dto.SoilProfileResponse {
	return dto.SoilProfileResponse{
		Type:          p.Type,
		Confidence:    p.Confidence,
		Color:         p.Color,
		Description:   p.Description,
		SuitableCrops: p.SuitableCrops,
		Properties:    p.Properties,
	}
}
