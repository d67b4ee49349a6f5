package dto

// ListQuery は GET /v1/equipment のクエリパラメータです。
type ListQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

// SpecResponse は仕様表の1行です。
type SpecResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EquipmentResponse は機材1件のレスポンスです。
// 価格テキストはリスティング区分で表示しないものを省略します。
type EquipmentResponse struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	RentPrice     int            `json:"rent_price"`
	BuyPrice      int            `json:"buy_price"`
	RentPriceText string         `json:"rent_price_text,omitempty"`
	BuyPriceText  string         `json:"buy_price_text,omitempty"`
	ListingType   string         `json:"listing_type"`
	ListingLabel  string         `json:"listing_label"`
	Location      string         `json:"location"`
	Owner         string         `json:"owner"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Available     bool           `json:"available"`
	Featured      bool           `json:"featured"`
	HP            string         `json:"hp,omitempty"`
	FuelType      string         `json:"fuel_type,omitempty"`
	Year          int            `json:"year,omitempty"`
	Images        int            `json:"images"`
	Specs         []SpecResponse `json:"specs"`
}

// ListResponse は機材一覧のレスポンスです。
type ListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Count     int                 `json:"count"`
}

// StatsResponse は集計のレスポンスです。
type StatsResponse struct {
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	AverageRating float64 `json:"average_rating"`
}

// CategoryResponse はカテゴリ1件です。
type CategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
