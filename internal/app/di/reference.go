package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	equipmentadapters "nethra_backend/internal/feature/equipment/adapters"
	equipmentusecase "nethra_backend/internal/feature/equipment/usecase"
	mandiadapters "nethra_backend/internal/feature/mandi/adapters"
	mandiusecase "nethra_backend/internal/feature/mandi/usecase"
	"nethra_backend/internal/platform/cache"
	"nethra_backend/internal/platform/db"
)

// Models returns every gorm model owned by the reference-data features.
func Models() []any {
	return []any{
		&mandiadapters.MandiPriceModel{},
		&equipmentadapters.EquipmentModel{},
		&equipmentadapters.EquipmentSpecModel{},
	}
}

// NewMandiRepository returns the database repository, wrapped with Redis caching.
// A nil rdb makes the cache a pass-through.
func NewMandiRepository(gdb *gorm.DB, rdb *redis.Client) mandiusecase.MandiRepository {
	return cache.NewCachingMandiRepository(rdb, cache.TimeUntilNext8AM, mandiadapters.NewMandiRepository(gdb), "mandi")
}

// NewEquipmentRepository returns the equipment repository.
func NewEquipmentRepository(gdb *gorm.DB) equipmentusecase.EquipmentRepository {
	return equipmentadapters.NewEquipmentRepository(gdb)
}

// MigrateAndSeed creates the reference tables and loads the bundled rows.
// Seeding is idempotent: rows are upserted by their natural keys.
func MigrateAndSeed(ctx context.Context, gdb *gorm.DB, mandi mandiusecase.MandiRepository, equipment equipmentusecase.EquipmentRepository) error {
	if err := db.Migrate(gdb, Models()...); err != nil {
		return err
	}
	if err := mandi.UpsertBatch(ctx, mandiadapters.SeedMandiPrices()); err != nil {
		return fmt.Errorf("seed mandi prices: %w", err)
	}
	if err := equipment.UpsertBatch(ctx, equipmentadapters.SeedEquipment()); err != nil {
		return fmt.Errorf("seed equipment: %w", err)
	}
	slog.Info("参照データを投入しました")
	return nil
}
