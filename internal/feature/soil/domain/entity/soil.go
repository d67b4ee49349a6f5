// Package entity はsoilフィーチャーのドメインモデルを定義します。
package entity

// Label は色分類器が返す土壌ラベルです。
type Label string

const (
	BlackSoil    Label = "Black Soil"
	AlluvialSoil Label = "Alluvial Soil"
	RedSoil      Label = "Red Soil"
)

// 分類ルールのしきい値です。
const (
	darkThreshold = 60
	redThreshold  = 120
)

// AverageColor は画像全ピクセルのチャンネル平均（0〜255）です。
type AverageColor struct {
	R int
	G int
	B int
}

// SoilProfile は土壌タイプごとの固定メタデータです。
// Confidence は画像から算出した値ではなくタイプごとの定数です。
type SoilProfile struct {
	Type          string   // 表示名
	Confidence    int      // 信頼度（%）
	Color         string   // スウォッチ色
	Description   string   // 説明文
	SuitableCrops []string // 適した作物（順序あり）
	Properties    []string // 特性タグ（順序あり）
}

// SoilAnalysis は1回の分類結果です。永続化はしません。
type SoilAnalysis struct {
	Sample  AverageColor
	Label   Label
	Profile SoilProfile
}

// Classify は平均色から土壌ラベルを決定します。先に一致したルールが優先されます。
func Classify(c AverageColor) Label {
	if c.R < darkThreshold && c.G < darkThreshold && c.B < darkThreshold {
		return BlackSoil
	}
	if c.R > redThreshold && c.R > c.G && c.R > c.B {
		return RedSoil
	}
	return AlluvialSoil
}

var labelOrder = []Label{BlackSoil, AlluvialSoil, RedSoil}

var profiles = map[Label]SoilProfile{
	BlackSoil: {
		Type:          "Black Soil (Regur)",
		Confidence:    94,
		Color:         "#1a1a1a",
		Description:   "High clay content, excellent at retaining moisture. Rich in iron, lime, and calcium.",
		SuitableCrops: []string{"Cotton", "Groundnut", "Tobacco", "Chillies"},
		Properties:    []string{"High Water Retention", "Self-plowing nature", "Rich in Nutrients"},
	},
	AlluvialSoil: {
		Type:          "Alluvial Soil",
		Confidence:    89,
		Color:         "#d2b48c",
		Description:   "Most fertile soil type found in river basins. Highly porous and rich in potash.",
		SuitableCrops: []string{"Rice", "Wheat", "Sugarcane", "Jute"},
		Properties:    []string{"Highly Fertile", "Light Texture", "Rich in Potash"},
	},
	RedSoil: {
		Type:          "Red Soil",
		Confidence:    91,
		Color:         "#8b4513",
		Description:   "Formed from weathering of crystalline rocks. Red color due to high iron diffusion.",
		SuitableCrops: []string{"Pulses", "Millets", "Oilseeds", "Tobacco"},
		Properties:    []string{"Good Drainage", "Acidic Nature", "High Iron Content"},
	},
}

// ProfileFor はラベルに対応するプロファイルのコピーを返します。
// Classify が返すラベルはすべてテーブルに存在します。
func ProfileFor(l Label) (SoilProfile, bool) {
	p, ok := profiles[l]
	if !ok {
		return SoilProfile{}, false
	}
	return clone(p), true
}

// Labels はテーブル順のラベル一覧を返します。
func Labels() []Label {
	out := make([]Label, len(labelOrder))
	copy(out, labelOrder)
	return out
}

// clone は呼び出し元がテーブルのスライスを書き換えられないようにコピーします。
func clone(p SoilProfile) SoilProfile {
	p.SuitableCrops = append([]string(nil), p.SuitableCrops...)
	p.Properties = append([]string(nil), p.Properties...)
	return p
}
