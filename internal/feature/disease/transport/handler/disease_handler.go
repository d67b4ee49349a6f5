// Package handler はdiseaseフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/disease/domain"
	"nethra_backend/internal/feature/disease/domain/entity"
	"nethra_backend/internal/feature/disease/transport/http/dto"
	"nethra_backend/internal/feature/disease/usecase"
)

// DiseaseUsecase は植物診断のユースケースインターフェースです。
type DiseaseUsecase interface {
	Detect(ctx context.Context, image []byte) (*entity.Diagnosis, error)
	DetectBase64(ctx context.Context, encoded string) (*entity.Diagnosis, error)
}

// DiseaseHandler は植物診断のHTTPリクエストを処理します。
type DiseaseHandler struct {
	uc DiseaseUsecase
}

// NewDiseaseHandler はDiseaseHandlerの新しいインスタンスを生成します。
func NewDiseaseHandler(uc DiseaseUsecase) *DiseaseHandler {
	return &DiseaseHandler{uc: uc}
}

// Detect はアップロードされた葉の画像を診断します。
//
// エンドポイント: POST /v1/disease/detect
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *DiseaseHandler) Detect(c *gin.Context) {
	img, _, err := api.ReadFormFile(c, "image", usecase.MaxImageSize)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrFileMissing):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		case errors.Is(err, api.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: "image exceeds 10MB"})
		default:
			slog.Error("診断画像の読み取りに失敗", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		}
		return
	}

	d, err := h.uc.Detect(c.Request.Context(), img)
	h.respond(c, d, err)
}

// Health はbase64画像をJSONで受け取って診断します。
//
// エンドポイント: POST /v1/health
func (h *DiseaseHandler) Health(c *gin.Context) {
	var req dto.HealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image is required"})
		return
	}

	d, err := h.uc.DetectBase64(c.Request.Context(), req.Image)
	h.respond(c, d, err)
}

func (h *DiseaseHandler) respond(c *gin.Context, d *entity.Diagnosis, err error) {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyImage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidResponse):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "invalid API response"})
		case errors.Is(err, domain.ErrUpstream):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "error analyzing plant"})
		default:
			slog.Error("植物診断に失敗", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DiagnosisResponse{
		Name:          d.Name,
		Confidence:    d.Confidence,
		Severity:      string(d.Severity),
		SeverityLabel: d.Severity.Label(),
		Description:   d.Description,
		Treatment:     d.Treatment,
		Prevention:    d.Prevention,
	})
}
