// Package dto はplant.id健康診断APIのリクエスト・レスポンス形式を定義します。
package dto

import "encoding/json"

// HealthAssessmentRequest は /health_assessment へのリクエストボディです。
type HealthAssessmentRequest struct {
	Images []string `json:"images"`
	Health string   `json:"health"`
}

// HealthAssessmentResponse は /health_assessment のレスポンスです。
type HealthAssessmentResponse struct {
	Result *Result `json:"result"`
}

// Result は診断結果本体です。
type Result struct {
	IsPlant *Probability `json:"is_plant"`
	Disease *Disease     `json:"disease"`
}

// Probability は確率と二値判定です。
type Probability struct {
	Probability float64 `json:"probability"`
	Binary      bool    `json:"binary"`
}

// Disease は病害候補の一覧です。
type Disease struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion は病害候補の1件です。
type Suggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Details     *Details `json:"details"`
}

// Details は details クエリで要求した追加情報です。
// description は文字列の場合と {"value": "..."} の場合があります。
type Details struct {
	LocalName   string          `json:"local_name"`
	Description json.RawMessage `json:"description"`
	Treatment   *Treatment      `json:"treatment"`
	CommonNames []string        `json:"common_names"`
}

// Treatment は処置の分類です。
type Treatment struct {
	Chemical   []string `json:"chemical"`
	Biological []string `json:"biological"`
	Prevention []string `json:"prevention"`
}

// DescriptionText は description を文字列として取り出します。
func (d *Details) DescriptionText() string {
	if d == nil || len(d.Description) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(d.Description, &s); err == nil {
		return s
	}
	var v struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(d.Description, &v); err == nil {
		return v.Value
	}
	return ""
}
