// Package handler はequipmentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/equipment/domain"
	"nethra_backend/internal/feature/equipment/domain/entity"
	"nethra_backend/internal/feature/equipment/transport/http/dto"
)

// EquipmentUsecase は農機具一覧のユースケースインターフェースです。
type EquipmentUsecase interface {
	List(ctx context.Context, q entity.EquipmentQuery) ([]entity.Equipment, error)
	Get(ctx context.Context, id uint) (*entity.Equipment, error)
	Stats(ctx context.Context) (entity.Stats, error)
	Categories() []entity.CategoryInfo
}

// EquipmentHandler は農機具一覧のHTTPリクエストを処理します。
type EquipmentHandler struct {
	uc EquipmentUsecase
}

// NewEquipmentHandler はEquipmentHandlerの新しいインスタンスを生成します。
func NewEquipmentHandler(uc EquipmentUsecase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// List は条件に一致する機材を返します。
//
// エンドポイント: GET /v1/equipment?category=&search=&sort=rating|priceAsc|priceDsc
func (h *EquipmentHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid query parameters"})
		return
	}

	items, err := h.uc.List(c.Request.Context(), entity.EquipmentQuery{
		Category: entity.Category(q.Category),
		Search:   q.Search,
		Sort:     entity.SortBy(q.Sort),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSort) || errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("機材一覧の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load equipment"})
		return
	}

	out := make([]dto.EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(e))
	}
	c.JSON(http.StatusOK, dto.ListResponse{Equipment: out, Count: len(out)})
}

// Get はIDで機材の詳細を返します。
//
// エンドポイント: GET /v1/equipment/:id
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	e, err := h.uc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: domain.ErrNotFound.Error()})
			return
		}
		slog.Error("機材の取得に失敗", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load equipment"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*e))
}

// Stats は件数と平均評価を返します。
//
// エンドポイント: GET /v1/equipment/stats
func (h *EquipmentHandler) Stats(c *gin.Context) {
	s, err := h.uc.Stats(c.Request.Context())
	if err != nil {
		slog.Error("機材集計の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load equipment stats"})
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{Total: s.Total, Available: s.Available, AverageRating: s.AverageRating})
}

// Categories はカテゴリの選択肢を返します。
//
// エンドポイント: GET /v1/equipment/categories
func (h *EquipmentHandler) Categories(c *gin.Context) {
	cs := h.uc.Categories()
	out := make([]dto.CategoryResponse, 0, len(cs))
	for _, ci := range cs {
		out = append(out, dto.CategoryResponse{Key: string(ci.Key), Label: ci.Label})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func toResponse(e entity.Equipment) dto.EquipmentResponse {
	specs := make([]dto.SpecResponse, 0, len(e.Specs))
	for _, s := range e.Specs {
		specs = append(specs, dto.SpecResponse{Label: s.Label, Value: s.Value})
	}

	r := dto.EquipmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     string(e.Category),
		Description:  e.Description,
		RentPrice:    e.RentPrice,
		BuyPrice:     e.BuyPrice,
		ListingType:  string(e.ListingType),
		ListingLabel: e.ListingType.Label(),
		Location:     e.Location,
		Owner:        e.Owner,
		Rating:       e.Rating,
		Reviews:      e.Reviews,
		Available:    e.Available,
		Featured:     e.Featured,
		HP:           e.HP,
		FuelType:     e.FuelType,
		Year:         e.Year,
		Images:       e.Images,
		Specs:        specs,
	}
	if e.ListingType.Rentable() {
		r.RentPriceText = entity.FormatRupees(e.RentPrice)
	}
	if e.ListingType.Buyable() {
		r.BuyPriceText = entity.FormatRupees(e.BuyPrice)
	}
	return r
}
