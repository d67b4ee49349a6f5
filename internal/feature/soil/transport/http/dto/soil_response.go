// Package dto はsoil HTTP APIのデータ転送オブジェクトを定義します。
package dto

// AverageColorResponse は画像の平均色です。
type AverageColorResponse struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// SoilProfileResponse は土壌プロファイルのレスポンスDTOです。
type SoilProfileResponse struct {
	Type          string   `json:"type"`
	Confidence    int      `json:"confidence"`
	Color         string   `json:"color"`
	Description   string   `json:"description"`
	SuitableCrops []string `json:"suitable_crops"`
	Properties    []string `json:"properties"`
}

// SoilAnalysisResponse は分類結果のレスポンスDTOです。
type SoilAnalysisResponse struct {
	Label        string               `json:"label"`
	AverageColor AverageColorResponse `json:"average_color"`
	Profile      SoilProfileResponse  `json:"profile"`
}
