// Package entity はmandiフィーチャーのドメインモデルを定義します。
package entity

// Trend は前日比の方向です。
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MandiPrice は市場（マンディ）ごとの作物価格です。
type MandiPrice struct {
	Crop        string
	Variety     string
	Mandi       string
	State       string
	MinPrice    int
	MaxPrice    int
	ModalPrice  int
	Unit        string
	Trend       Trend
	Change      float64 // 前日比（%）
	LastUpdated string  // 表示用の相対時刻（例: "2h ago"）
}

// SortBy は一覧の並び順です。
type SortBy string

const (
	SortByCrop   SortBy = "crop"   // 作物名の昇順
	SortByPrice  SortBy = "price"  // 最頻価格の降順
	SortByChange SortBy = "change" // 変化率の降順
)

// 絞り込みなしを表すフォームの値です。
const (
	AllStates = "All States"
	AllCrops  = "All Crops"
)

// MandiQuery は一覧取得の条件です。空文字は条件なしとして扱います。
type MandiQuery struct {
	Search string
	State  string
	Crop   string
	SortBy SortBy
}

// MarketSummary は全件に対する集計です。
type MarketSummary struct {
	Total         int
	Gainers       int
	Losers        int
	AverageChange float64
}

// Filters は絞り込みの選択肢です。
type Filters struct {
	States []string
	Crops  []string
}
