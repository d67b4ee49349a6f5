// Package dto は推論APIのリクエスト・レスポンス形式を定義します。
package dto

// FertilizerRequest は /predict-fertilizer へのリクエストボディです。
type FertilizerRequest struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Moisture    float64 `json:"moisture"`
	SoilType    string  `json:"soil_type"`
	CropType    string  `json:"crop_type"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorous float64 `json:"phosphorous"`
	Potassium   float64 `json:"potassium"`
}

// FertilizerResponse は /predict-fertilizer のレスポンスです。
type FertilizerResponse struct {
	FertilizerPrediction []string `json:"fertilizer_prediction"`
}

// CropRequest は /predict-new-model へのリクエストボディです。
type CropRequest struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	Nitrogen    float64 `json:"nitrogen"`
}

// CropResponse は /predict-new-model のレスポンスです。
type CropResponse struct {
	CropRecommendation string      `json:"crop_recommendation"`
	ScaledValues       [][]float64 `json:"scaled_values"`
	Confidence         float64     `json:"confidence"`
}
