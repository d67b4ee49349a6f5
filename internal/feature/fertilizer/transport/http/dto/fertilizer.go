package dto

// PredictRequest は POST /v1/fertilizer/predict のリクエストボディです。
// 数値は0を有効値として扱うためポインタで受けます。
type PredictRequest struct {
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *float64 `json:"humidity" binding:"required"`
	Moisture    *float64 `json:"moisture" binding:"required"`
	SoilType    string   `json:"soil_type" binding:"required"`
	CropType    string   `json:"crop_type" binding:"required"`
	Nitrogen    *float64 `json:"nitrogen" binding:"required"`
	Phosphorous *float64 `json:"phosphorous" binding:"required"`
	Potassium   *float64 `json:"potassium" binding:"required"`
}

// FertilizerResponse は推奨肥料1件です。
type FertilizerResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Benefits    []string `json:"benefits"`
	InGuide     bool     `json:"in_guide"`
}

// PredictResponse は推論結果です。
type PredictResponse struct {
	Recommendations []FertilizerResponse `json:"recommendations"`
	Confidence      int                  `json:"confidence"`
}

// GuideEntryResponse はガイドの1項目です。
type GuideEntryResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

// GuideResponse は GET /v1/fertilizer/guide のレスポンスです。
type GuideResponse struct {
	Fertilizers []GuideEntryResponse `json:"fertilizers"`
	Crops       []string             `json:"crops"`
	SoilTypes   []string             `json:"soil_types"`
}
