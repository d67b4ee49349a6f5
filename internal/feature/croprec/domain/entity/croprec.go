// Package entity はcroprecフィーチャーのドメインモデルを定義します。
package entity

// UnknownCrop は推論サービスが作物名を返さなかったときの表示名です。
const UnknownCrop = "Unknown"

// CropQuery は作物推奨の入力です。
type CropQuery struct {
	Temperature float64
	Humidity    float64
	Rainfall    float64
	Nitrogen    float64
}

// CropPrediction は推論サービスの生の結果です。欠けている値はゼロ値です。
type CropPrediction struct {
	Crop         string
	ScaledValues []float64 // 先頭行のみ
	Confidence   float64
}

// Level はスケール済み入力値の区分です。
type Level string

const (
	LevelVeryLow  Level = "very_low"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// LevelOf はスケール済みの値を4段階に区分します。
func LevelOf(v float64) Level {
	switch {
	case v < -0.5:
		return LevelVeryLow
	case v < 0:
		return LevelLow
	case v < 0.5:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// FactorNames はスケール済みの値の並び順です。
var FactorNames = []string{"Temperature", "Humidity", "Rainfall", "Nitrogen"}

// ScaledFactor は入力項目ごとのスケール値と区分です。
type ScaledFactor struct {
	Name  string
	Value float64
	Level Level
}

// CropRecommendation は利用者に返す推奨結果です。
type CropRecommendation struct {
	Crop       string
	Factors    []ScaledFactor
	Confidence float64
}
