// Package adapters はmandiフィーチャーの永続化を実装します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nethra_backend/internal/feature/mandi/domain/entity"
	"nethra_backend/internal/feature/mandi/usecase"
)

type mandiGorm struct {
	db *gorm.DB
}

var _ usecase.MandiRepository = (*mandiGorm)(nil)

// NewMandiRepository はgormを使ったMandiRepositoryを生成します。
func NewMandiRepository(db *gorm.DB) *mandiGorm {
	return &mandiGorm{db: db}
}

// MandiPriceModel はmandi_pricesテーブルの行です。
// Seq は表示順で、同値ソート時の順序保証に使います。
type MandiPriceModel struct {
	ID          uint    `gorm:"primaryKey"`
	Seq         int     `gorm:"not null;index"`
	Crop        string  `gorm:"size:64;not null;uniqueIndex:mandi_crop_variety_market,priority:1"`
	Variety     string  `gorm:"size:64;not null;uniqueIndex:mandi_crop_variety_market,priority:2"`
	Mandi       string  `gorm:"size:64;not null;uniqueIndex:mandi_crop_variety_market,priority:3"`
	State       string  `gorm:"size:64;not null;index"`
	MinPrice    int     `gorm:"not null"`
	MaxPrice    int     `gorm:"not null"`
	ModalPrice  int     `gorm:"not null"`
	Unit        string  `gorm:"size:32;not null"`
	Trend       string  `gorm:"size:16;not null"`
	Change      float64 `gorm:"not null;default:0"`
	LastUpdated string  `gorm:"size:32"`
}

func (MandiPriceModel) TableName() string {
	return "mandi_prices"
}

func toModel(seq int, e entity.MandiPrice) MandiPriceModel {
	return MandiPriceModel{
		Seq:         seq,
		Crop:        e.Crop,
		Variety:     e.Variety,
		Mandi:       e.Mandi,
		State:       e.State,
		MinPrice:    e.MinPrice,
		MaxPrice:    e.MaxPrice,
		ModalPrice:  e.ModalPrice,
		Unit:        e.Unit,
		Trend:       string(e.Trend),
		Change:      e.Change,
		LastUpdated: e.LastUpdated,
	}
}

func toEntity(m MandiPriceModel) entity.MandiPrice {
	return entity.MandiPrice{
		Crop:        m.Crop,
		Variety:     m.Variety,
		Mandi:       m.Mandi,
		State:       m.State,
		MinPrice:    m.MinPrice,
		MaxPrice:    m.MaxPrice,
		ModalPrice:  m.ModalPrice,
		Unit:        m.Unit,
		Trend:       entity.Trend(m.Trend),
		Change:      m.Change,
		LastUpdated: m.LastUpdated,
	}
}

// UpsertBatch は価格を挿入または更新します。スライスの順序がそのまま表示順になります。
func (r *mandiGorm) UpsertBatch(ctx context.Context, prices []entity.MandiPrice) error {
	if len(prices) == 0 {
		return nil
	}
	ms := make([]MandiPriceModel, 0, len(prices))
	for i, e := range prices {
		ms = append(ms, toModel(i, e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "crop"}, {Name: "variety"}, {Name: "mandi"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"seq", "state", "min_price", "max_price", "modal_price", "unit", "trend", "change", "last_updated",
		}),
	}).Create(&ms).Error
}

// FindAll は全件を表示順で返します。
func (r *mandiGorm) FindAll(ctx context.Context) ([]entity.MandiPrice, error) {
	var rows []MandiPriceModel
	if err := r.db.WithContext(ctx).Order("seq ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.MandiPrice, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
