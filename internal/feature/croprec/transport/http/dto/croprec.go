package dto

// RecommendRequest は POST /v1/crops/recommend のリクエストボディです。
type RecommendRequest struct {
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *float64 `json:"humidity" binding:"required"`
	Rainfall    *float64 `json:"rainfall" binding:"required"`
	Nitrogen    *float64 `json:"nitrogen" binding:"required"`
}

// FactorResponse はスケール済み入力値1件です。
type FactorResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Level string  `json:"level"`
}

// RecommendResponse は作物推奨の結果です。
type RecommendResponse struct {
	CropRecommendation string           `json:"crop_recommendation"`
	ScaledValues       []FactorResponse `json:"scaled_values"`
	Confidence         float64          `json:"confidence"`
}
