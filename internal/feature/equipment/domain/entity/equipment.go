// Package entity はequipmentフィーチャーのドメインモデルを定義します。
package entity

import (
	"strconv"
	"strings"
)

// Category は機材の分類です。
type Category string

const (
	CategoryAll        Category = "all"
	CategoryTractors   Category = "tractors"
	CategoryHarvesters Category = "harvesters"
	CategoryTillers    Category = "tillers"
	CategoryIrrigation Category = "irrigation"
	CategoryVehicles   Category = "vehicles"
	CategoryTools      Category = "tools"
	CategorySprayers   Category = "sprayers"
)

// CategoryInfo はカテゴリの表示名です。
type CategoryInfo struct {
	Key   Category
	Label string
}

var categories = []CategoryInfo{
	{Key: CategoryAll, Label: "All Equipment"},
	{Key: CategoryTractors, Label: "Tractors"},
	{Key: CategoryHarvesters, Label: "Harvesters"},
	{Key: CategoryTillers, Label: "Tillers"},
	{Key: CategoryIrrigation, Label: "Irrigation"},
	{Key: CategoryVehicles, Label: "Vehicles"},
	{Key: CategoryTools, Label: "Tools"},
	{Key: CategorySprayers, Label: "Sprayers"},
}

// Categories は "all" を先頭にしたカテゴリ一覧を返します。
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// IsKnown はカテゴリが一覧に含まれるかを返します。
func (c Category) IsKnown() bool {
	for _, ci := range categories {
		if ci.Key == c {
			return true
		}
	}
	return false
}

// ListingType はレンタル・販売の区分です。
type ListingType string

const (
	ListingRent ListingType = "rent"
	ListingBuy  ListingType = "buy"
	ListingBoth ListingType = "both"
)

// Label は一覧カードに表示するバッジ文言です。
func (l ListingType) Label() string {
	switch l {
	case ListingBoth:
		return "Rent & Buy"
	case ListingRent:
		return "For Rent"
	default:
		return "For Sale"
	}
}

// Rentable はレンタル価格を表示するかを返します。
func (l ListingType) Rentable() bool { return l == ListingRent || l == ListingBoth }

// Buyable は購入価格を表示するかを返します。
func (l ListingType) Buyable() bool { return l == ListingBuy || l == ListingBoth }

// Spec は仕様表の1行です。
type Spec struct {
	Label string
	Value string
}

// Equipment はレンタル・販売される農機具1件です。
// HP と FuelType は空文字、Year は0で「未記載」を表します。
type Equipment struct {
	ID          uint
	Name        string
	Category    Category
	Description string
	RentPrice   int // 1日あたり（ルピー）
	BuyPrice    int
	ListingType ListingType
	Location    string
	Owner       string
	Rating      float64
	Reviews     int
	Available   bool
	Featured    bool
	HP          string
	FuelType    string
	Year        int
	Images      int
	Specs       []Spec
}

// SortBy は一覧の並び順です。
type SortBy string

const (
	SortByRating   SortBy = "rating"   // 評価の降順
	SortByPriceAsc SortBy = "priceAsc" // レンタル価格の昇順
	SortByPriceDsc SortBy = "priceDsc" // レンタル価格の降順
)

// EquipmentQuery は一覧取得の条件です。
type EquipmentQuery struct {
	Category Category
	Search   string
	Sort     SortBy
}

// Stats は全機材の集計です。AverageRating は小数1桁に丸めた値です。
type Stats struct {
	Total         int
	Available     int
	AverageRating float64
}

// FormatRupees は1000未満はそのまま、それ以上はインド式の桁区切りで "₹" を付けます。
// 例: 650000 -> "₹6,50,000"
func FormatRupees(p int) string {
	if p < 0 {
		return "-" + FormatRupees(-p)
	}
	s := strconv.Itoa(p)
	if len(s) <= 3 {
		return "₹" + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return "₹" + strings.Join(groups, ",") + "," + tail
}
