// Package handler はmandiフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nethra_backend/internal/api"
	"nethra_backend/internal/feature/mandi/domain"
	"nethra_backend/internal/feature/mandi/domain/entity"
	"nethra_backend/internal/feature/mandi/transport/http/dto"
)

// MandiUsecase はマンディ価格のユースケースインターフェースです。
type MandiUsecase interface {
	List(ctx context.Context, q entity.MandiQuery) ([]entity.MandiPrice, error)
	Summary(ctx context.Context) (entity.MarketSummary, error)
	Filters(ctx context.Context) (entity.Filters, error)
}

// MandiHandler はマンディ価格のHTTPリクエストを処理します。
type MandiHandler struct {
	uc MandiUsecase
}

// NewMandiHandler はMandiHandlerの新しいインスタンスを生成します。
func NewMandiHandler(uc MandiUsecase) *MandiHandler {
	return &MandiHandler{uc: uc}
}

// List は条件に一致するマンディ価格を返します。
//
// エンドポイント: GET /v1/mandi/prices?search=&state=&crop=&sort=crop|price|change
func (h *MandiHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid query parameters"})
		return
	}

	prices, err := h.uc.List(c.Request.Context(), entity.MandiQuery{
		Search: q.Search,
		State:  q.State,
		Crop:   q.Crop,
		SortBy: entity.SortBy(q.Sort),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("マンディ価格の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load mandi prices"})
		return
	}

	out := make([]dto.PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.PriceResponse{
			Crop:        p.Crop,
			Variety:     p.Variety,
			Mandi:       p.Mandi,
			State:       p.State,
			MinPrice:    p.MinPrice,
			MaxPrice:    p.MaxPrice,
			ModalPrice:  p.ModalPrice,
			Unit:        p.Unit,
			Trend:       string(p.Trend),
			Change:      p.Change,
			LastUpdated: p.LastUpdated,
		})
	}
	c.JSON(http.StatusOK, dto.ListResponse{Prices: out, Count: len(out)})
}

// Summary は全マンディの値動き集計を返します。
//
// エンドポイント: GET /v1/mandi/summary
func (h *MandiHandler) Summary(c *gin.Context) {
	s, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		slog.Error("マンディ集計の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load market summary"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Total:             s.Total,
		Gainers:           s.Gainers,
		Losers:            s.Losers,
		AverageChange:     s.AverageChange,
		AverageChangeText: formatChange(s.AverageChange),
	})
}

// Filters は州と作物の選択肢を返します。
//
// エンドポイント: GET /v1/mandi/filters
func (h *MandiHandler) Filters(c *gin.Context) {
	f, err := h.uc.Filters(c.Request.Context())
	if err != nil {
		slog.Error("マンディ絞り込み選択肢の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load filters"})
		return
	}

	states := append([]string{entity.AllStates}, f.States...)
	crops := append([]string{entity.AllCrops}, f.Crops...)
	c.JSON(http.StatusOK, dto.FiltersResponse{States: states, Crops: crops})
}

// formatChange は正の値にだけ "+" を付け、小数1桁のパーセント表記にします。
func formatChange(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}
