package dto

// ListQuery は GET /v1/mandi/prices のクエリパラメータです。
type ListQuery struct {
	Search string `form:"search"`
	State  string `form:"state"`
	Crop   string `form:"crop"`
	Sort   string `form:"sort"`
}

// PriceResponse はマンディ価格1件のレスポンスです。
type PriceResponse struct {
	Crop        string  `json:"crop"`
	Variety     string  `json:"variety"`
	Mandi       string  `json:"mandi"`
	State       string  `json:"state"`
	MinPrice    int     `json:"min_price"`
	MaxPrice    int     `json:"max_price"`
	ModalPrice  int     `json:"modal_price"`
	Unit        string  `json:"unit"`
	Trend       string  `json:"trend"`
	Change      float64 `json:"change"`
	LastUpdated string  `json:"last_updated"`
}

// ListResponse は価格一覧のレスポンスです。
type ListResponse struct {
	Prices []PriceResponse `json:"prices"`
	Count  int             `json:"count"`
}

// SummaryResponse は市場集計のレスポンスです。
type SummaryResponse struct {
	Total             int     `json:"total"`
	Gainers           int     `json:"gainers"`
	Losers            int     `json:"losers"`
	AverageChange     float64 `json:"average_change"`
	AverageChangeText string  `json:"average_change_text"`
}

// FiltersResponse は絞り込み選択肢のレスポンスです。
type FiltersResponse struct {
	States []string `json:"states"`
	Crops  []string `json:"crops"`
}
