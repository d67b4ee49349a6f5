// Package entity はfertilizerフィーチャーのドメインモデルを定義します。
package entity

// DefaultConfidence は推論サービスが信頼度を返さないため固定で付与する値です。
const DefaultConfidence = 85

// FertilizerQuery は肥料推論の入力です。
type FertilizerQuery struct {
	Temperature float64 // 気温（℃）
	Humidity    float64 // 湿度（%）
	Moisture    float64 // 土壌水分（%）
	SoilType    string
	CropType    string
	Nitrogen    float64 // kg/ha
	Phosphorous float64 // kg/ha
	Potassium   float64 // kg/ha
}

// GuideEntry は肥料ガイドの1項目です。
type GuideEntry struct {
	Name        string
	Description string
	Benefits    []string
}

// RecommendedFertilizer は推論結果の1件で、ガイドにあれば説明を付けます。
type RecommendedFertilizer struct {
	Name        string
	Description string
	Benefits    []string
	InGuide     bool
}

// FertilizerRecommendation は推論結果全体です。
type FertilizerRecommendation struct {
	Recommendations []RecommendedFertilizer
	Confidence      int
}

var guide = []GuideEntry{
	{
		Name:        "Urea",
		Description: "High nitrogen content fertilizer, excellent for leafy growth",
		Benefits:    []string{"High Nitrogen (46%)", "Boosts vegetative growth", "Fast-acting", "Water-soluble"},
	},
	{
		Name:        "DAP",
		Description: "Diammonium Phosphate - provides both nitrogen and phosphorus",
		Benefits:    []string{"Nitrogen + Phosphorus", "Promotes root development", "Aids flowering", "Good for pulses"},
	},
	{
		Name:        "NPK",
		Description: "Balanced fertilizer with Nitrogen, Phosphorus, and Potassium",
		Benefits:    []string{"Complete nutrition", "Balanced growth", "Versatile use", "Suitable for most crops"},
	},
	{
		Name:        "Potash",
		Description: "Potassium-rich fertilizer for fruit and vegetable crops",
		Benefits:    []string{"High Potassium", "Improves fruit quality", "Disease resistance", "Better taste & color"},
	},
	{
		Name:        "Ammonium Sulphate",
		Description: "Nitrogen source with sulfur, good for acidic soils",
		Benefits:    []string{"Nitrogen + Sulfur", "Lowers soil pH", "Cost-effective", "Good for tea/coffee"},
	},
	{
		Name:        "Calcium Nitrate",
		Description: "Provides nitrogen and calcium for strong plant structure",
		Benefits:    []string{"Nitrogen + Calcium", "Prevents blossom end rot", "Strong stems", "Improves quality"},
	},
}

// Crops はフォームで選べる作物です。
var Crops = []string{
	"Wheat", "Rice", "Maize", "Sugarcane", "Cotton",
	"Soybean", "Groundnut", "Mustard", "Barley", "Chickpea",
}

// SoilTypes はフォームで選べる土壌タイプです。
var SoilTypes = []string{"Alluvial", "Black (Regur)", "Red & Yellow", "Laterite", "Loamy", "Sandy"}

// Guide はガイド全体をコピーして返します。
func Guide() []GuideEntry {
	out := make([]GuideEntry, len(guide))
	for i, g := range guide {
		g.Benefits = append([]string(nil), g.Benefits...)
		out[i] = g
	}
	return out
}

// Enrich は推論サービスが返した名前にガイドの説明を付けます。名前は完全一致で照合します。
func Enrich(name string) RecommendedFertilizer {
	for _, g := range guide {
		if g.Name == name {
			return RecommendedFertilizer{
				Name:        name,
				Description: g.Description,
				Benefits:    append([]string(nil), g.Benefits...),
				InGuide:     true,
			}
		}
	}
	return RecommendedFertilizer{Name: name, Benefits: []string{}}
}
