// Package adapters はequipmentフィーチャーの永続化を実装します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nethra_backend/internal/feature/equipment/domain"
	"nethra_backend/internal/feature/equipment/domain/entity"
	"nethra_backend/internal/feature/equipment/usecase"
)

type equipmentGorm struct {
	db *gorm.DB
}

var _ usecase.EquipmentRepository = (*equipmentGorm)(nil)

// NewEquipmentRepository はgormを使ったEquipmentRepositoryを生成します。
func NewEquipmentRepository(db *gorm.DB) *equipmentGorm {
	return &equipmentGorm{db: db}
}

// EquipmentModel はequipmentテーブルの行です。
type EquipmentModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"size:128;not null"`
	Category    string `gorm:"size:32;not null;index"`
	Description string `gorm:"size:512"`
	RentPrice   int    `gorm:"not null"`
	BuyPrice    int    `gorm:"not null"`
	ListingType string `gorm:"size:8;not null"`
	Location    string `gorm:"size:128"`
	Owner       string `gorm:"size:128"`
	Rating      float64
	Reviews     int
	Available   bool
	Featured    bool
	HP          string `gorm:"column:hp;size:16"`
	FuelType    string `gorm:"size:32"`
	Year        int
	Images      int
	Specs       []EquipmentSpecModel `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}

// EquipmentSpecModel は仕様表の1行です。Position で表示順を保持します。
type EquipmentSpecModel struct {
	ID          uint   `gorm:"primaryKey"`
	EquipmentID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Label       string `gorm:"size:64;not null"`
	Value       string `gorm:"size:128;not null"`
}

func (EquipmentSpecModel) TableName() string {
	return "equipment_specs"
}

func toModel(e entity.Equipment) EquipmentModel {
	return EquipmentModel{
		ID:          e.ID,
		Name:        e.Name,
		Category:    string(e.Category),
		Description: e.Description,
		RentPrice:   e.RentPrice,
		BuyPrice:    e.BuyPrice,
		ListingType: string(e.ListingType),
		Location:    e.Location,
		Owner:       e.Owner,
		Rating:      e.Rating,
		Reviews:     e.Reviews,
		Available:   e.Available,
		Featured:    e.Featured,
		HP:          e.HP,
		FuelType:    e.FuelType,
		Year:        e.Year,
		Images:      e.Images,
	}
}

func toEntity(m EquipmentModel) entity.Equipment {
	specs := make([]entity.Spec, 0, len(m.Specs))
	for _, s := range m.Specs {
		specs = append(specs, entity.Spec{Label: s.Label, Value: s.Value})
	}
	return entity.Equipment{
		ID:          m.ID,
		Name:        m.Name,
		Category:    entity.Category(m.Category),
		Description: m.Description,
		RentPrice:   m.RentPrice,
		BuyPrice:    m.BuyPrice,
		ListingType: entity.ListingType(m.ListingType),
		Location:    m.Location,
		Owner:       m.Owner,
		Rating:      m.Rating,
		Reviews:     m.Reviews,
		Available:   m.Available,
		Featured:    m.Featured,
		HP:          m.HP,
		FuelType:    m.FuelType,
		Year:        m.Year,
		Images:      m.Images,
		Specs:       specs,
	}
}

func orderedSpecs(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindAll は全機材を仕様表付きでID順に返します。
func (r *equipmentGorm) FindAll(ctx context.Context) ([]entity.Equipment, error) {
	var rows []EquipmentModel
	if err := r.db.WithContext(ctx).Preload("Specs", orderedSpecs).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindByID はIDで機材を取得します。存在しない場合は domain.ErrNotFound を返します。
func (r *equipmentGorm) FindByID(ctx context.Context, id uint) (*entity.Equipment, error) {
	var m EquipmentModel
	err := r.db.WithContext(ctx).Preload("Specs", orderedSpecs).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// UpsertBatch は機材を挿入または更新し、仕様表を置き換えます。
func (r *equipmentGorm) UpsertBatch(ctx context.Context, items []entity.Equipment) error {
	if len(items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range items {
			m := toModel(e)
			if err := tx.Omit("Specs").Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&m).Error; err != nil {
				return fmt.Errorf("upsert equipment %d: %w", e.ID, err)
			}

			if err := tx.Where("equipment_id = ?", e.ID).Delete(&EquipmentSpecModel{}).Error; err != nil {
				return fmt.Errorf("clear specs %d: %w", e.ID, err)
			}
			if len(e.Specs) == 0 {
				continue
			}
			specs := make([]EquipmentSpecModel, 0, len(e.Specs))
			for i, s := range e.Specs {
				specs = append(specs, EquipmentSpecModel{EquipmentID: e.ID, Position: i, Label: s.Label, Value: s.Value})
			}
			if err := tx.Create(&specs).Error; err != nil {
				return fmt.Errorf("insert specs %d: %w", e.ID, err)
			}
		}
		return nil
	})
}
