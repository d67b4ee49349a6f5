// Package usecase はマンディ価格の検索と集計を実装します。
package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"nethra_backend/internal/feature/mandi/domain"
	"nethra_backend/internal/feature/mandi/domain/entity"
)

// MandiRepository はマンディ価格の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MandiRepository interface {
	// FindAll は全件を表示順で返します。
	FindAll(ctx context.Context) ([]entity.MandiPrice, error)
	// UpsertBatch は価格を挿入または更新します。
	UpsertBatch(ctx context.Context, prices []entity.MandiPrice) error
}

type mandiUsecase struct {
	repo MandiRepository
}

// NewMandiUsecase はmandiUsecaseの新しいインスタンスを生成します。
func NewMandiUsecase(repo MandiRepository) *mandiUsecase {
	return &mandiUsecase{repo: repo}
}

// ParseSortBy はクエリ文字列を並び順に変換します。空文字は作物名順です。
func ParseSortBy(s string) (entity.SortBy, error) {
	switch entity.SortBy(strings.TrimSpace(s)) {
	case "", entity.SortByCrop:
		return entity.SortByCrop, nil
	case entity.SortByPrice:
		return entity.SortByPrice, nil
	case entity.SortByChange:
		return entity.SortByChange, nil
	default:
		return "", domain.ErrInvalidSort
	}
}

// List は条件に一致する価格を並べ替えて返します。同値の行は表示順を保ちます。
func (u *mandiUsecase) List(ctx context.Context, q entity.MandiQuery) ([]entity.MandiPrice, error) {
	sortBy, err := ParseSortBy(string(q.SortBy))
	if err != nil {
		return nil, err
	}

	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	state := normalizeFilter(q.State, entity.AllStates)
	crop := normalizeFilter(q.Crop, entity.AllCrops)

	out := make([]entity.MandiPrice, 0, len(all))
	for _, p := range all {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if state != "" && p.State != state {
			continue
		}
		if crop != "" && p.Crop != crop {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case entity.SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ModalPrice > out[j].ModalPrice })
	case entity.SortByChange:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Change > out[j].Change })
	default:
		// Collator はgoroutineセーフではないため呼び出しごとに生成する
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i].Crop, out[j].Crop) < 0 })
	}

	return out, nil
}

// Summary は全件に対する値上がり・値下がり件数と平均変化率を返します。
func (u *mandiUsecase) Summary(ctx context.Context) (entity.MarketSummary, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return entity.MarketSummary{}, err
	}

	s := entity.MarketSummary{Total: len(all)}
	if len(all) == 0 {
		return s, nil
	}

	var sum float64
	for _, p := range all {
		sum += p.Change
		switch p.Trend {
		case entity.TrendUp:
			s.Gainers++
		case entity.TrendDown:
			s.Losers++
		}
	}
	s.AverageChange = sum / float64(len(all))
	return s, nil
}

// Filters は州と作物の重複なしソート済み一覧を返します。
func (u *mandiUsecase) Filters(ctx context.Context) (entity.Filters, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return entity.Filters{}, err
	}

	states := make(map[string]struct{})
	crops := make(map[string]struct{})
	for _, p := range all {
		states[p.State] = struct{}{}
		crops[p.Crop] = struct{}{}
	}

	return entity.Filters{States: sortedKeys(states), Crops: sortedKeys(crops)}, nil
}

// Seed は参照データを投入します。
func (u *mandiUsecase) Seed(ctx context.Context, prices []entity.MandiPrice) error {
	return u.repo.UpsertBatch(ctx, prices)
}

func normalizeFilter(v, all string) string {
	v = strings.TrimSpace(v)
	if v == all {
		return ""
	}
	return v
}

func matchesSearch(p entity.MandiPrice, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Crop), lowered) ||
		strings.Contains(strings.ToLower(p.Mandi), lowered) ||
		strings.Contains(strings.ToLower(p.State), lowered)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
