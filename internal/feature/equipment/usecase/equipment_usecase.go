// Package usecase は農機具レンタル一覧の検索と集計を実装します。
package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"nethra_backend/internal/feature/equipment/domain"
	"nethra_backend/internal/feature/equipment/domain/entity"
)

// EquipmentRepository は機材の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EquipmentRepository interface {
	// FindAll は全機材をID順で返します。
	FindAll(ctx context.Context) ([]entity.Equipment, error)
	// FindByID は存在しない場合 domain.ErrNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.Equipment, error)
	// UpsertBatch は機材を挿入または更新します。
	UpsertBatch(ctx context.Context, items []entity.Equipment) error
}

type equipmentUsecase struct {
	repo EquipmentRepository
}

// NewEquipmentUsecase はequipmentUsecaseの新しいインスタンスを生成します。
func NewEquipmentUsecase(repo EquipmentRepository) *equipmentUsecase {
	return &equipmentUsecase{repo: repo}
}

// List はカテゴリと検索語で絞り込み、指定順に並べた機材を返します。
func (u *equipmentUsecase) List(ctx context.Context, q entity.EquipmentQuery) ([]entity.Equipment, error) {
	category := entity.Category(strings.TrimSpace(string(q.Category)))
	if category == "" {
		category = entity.CategoryAll
	}
	if !category.IsKnown() {
		return nil, domain.ErrInvalidCategory
	}

	sortBy := entity.SortBy(strings.TrimSpace(string(q.Sort)))
	switch sortBy {
	case "":
		sortBy = entity.SortByRating
	case entity.SortByRating, entity.SortByPriceAsc, entity.SortByPriceDsc:
	default:
		return nil, domain.ErrInvalidSort
	}

	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]entity.Equipment, 0, len(all))
	for _, e := range all {
		if category != entity.CategoryAll && e.Category != category {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}

	switch sortBy {
	case entity.SortByPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RentPrice < out[j].RentPrice })
	case entity.SortByPriceDsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RentPrice > out[j].RentPrice })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out, nil
}

// Get はIDで機材を1件返します。
func (u *equipmentUsecase) Get(ctx context.Context, id uint) (*entity.Equipment, error) {
	return u.repo.FindByID(ctx, id)
}

// Stats は全機材の件数、貸出可能数、平均評価を返します。
func (u *equipmentUsecase) Stats(ctx context.Context) (entity.Stats, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return entity.Stats{}, err
	}

	s := entity.Stats{Total: len(all)}
	if len(all) == 0 {
		return s, nil
	}

	sum := decimal.Zero
	for _, e := range all {
		if e.Available {
			s.Available++
		}
		sum = sum.Add(decimal.NewFromFloat(e.Rating))
	}
	s.AverageRating = sum.Div(decimal.NewFromInt(int64(len(all)))).Round(1).InexactFloat64()
	return s, nil
}

// Categories は "all" を含むカテゴリ一覧を返します。
func (u *equipmentUsecase) Categories() []entity.CategoryInfo {
	return entity.Categories()
}

// Seed は参照データを投入します。
func (u *equipmentUsecase) Seed(ctx context.Context, items []entity.Equipment) error {
	return u.repo.UpsertBatch(ctx, items)
}

func matchesSearch(e entity.Equipment, lowered string) bool {
	return strings.Contains(strings.ToLower(e.Name), lowered) ||
		strings.Contains(strings.ToLower(e.Location), lowered) ||
		strings.Contains(strings.ToLower(e.Owner), lowered)
}
