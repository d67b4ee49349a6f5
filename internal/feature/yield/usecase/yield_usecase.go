// Package usecase はyieldフィーチャーの収量シミュレーションを実装します。
package usecase

import (
	"github.com/shopspring/decimal"

	"nethra_backend/internal/feature/yield/domain/entity"
)

const (
	alluvial        = "Alluvial"
	sugarcane       = "Sugarcane"
	minOptimalTempC = 15
	maxOptimalTempC = 35
	maxConfidence   = 95
)

// スコア計算は十進数で厳密に行い、しきい値比較に二進浮動小数点の誤差を持ち込みません。
var (
	rainfallWeight = decimal.RequireFromString("0.002") // rainfall / 200 * 0.4
	tempOptimal    = decimal.RequireFromString("0.6")
	tempOutside    = decimal.RequireFromString("0.2")
	soilAlluvial   = decimal.RequireFromString("0.3")
	soilOther      = decimal.RequireFromString("0.1")
	factorBase     = decimal.RequireFromString("0.7")
	factorWeight   = decimal.RequireFromString("0.6")
	excellentAbove = decimal.RequireFromString("0.7")
	goodAbove      = decimal.RequireFromString("0.5")
	averageAbove   = decimal.RequireFromString("0.3")
	lowRainfall    = decimal.RequireFromString("0.5")
	confidenceBase = decimal.NewFromInt(60)
	confidenceStep = decimal.NewFromInt(40)
)

// 助言文言は画面表示と同一です。
const (
	adviceLowRainfall      = "Consider supplemental irrigation to compensate for low rainfall."
	adviceAdequateRainfall = "Rainfall levels are adequate for this crop."
	adviceCold             = "Low temperatures may affect germination — consider delayed sowing."
	adviceHot              = "High temperatures detected — ensure adequate soil moisture."
	adviceOptimalTemp      = "Temperature range is optimal for this crop."
	adviceAlluvial         = "Alluvial soil is highly suitable — maintain organic matter levels."
	adviceCompost          = "Consider adding organic compost to improve soil structure."
)

// Options はフォームの選択肢です。
type Options struct {
	Crops          []string
	SoilCategories []string
	States         []string
}

// yieldUsecase は収量推定を提供します。状態を持ちません。
type yieldUsecase struct{}

// NewYieldUsecase はyieldUsecaseの新しいインスタンスを生成します。
func NewYieldUsecase() *yieldUsecase {
	return &yieldUsecase{}
}

// Estimate は入力のみから決定的に収量を推定します。
// 入力検証は呼び出し側（transport層）の責務です。
func (u *yieldUsecase) Estimate(q entity.YieldQuery) entity.YieldEstimate {
	return Simulate(q)
}

// Options はフォームで使う作物・土壌・州の一覧を返します。
func (u *yieldUsecase) Options() Options {
	return Options{
		Crops:          append([]string(nil), entity.Crops...),
		SoilCategories: append([]string(nil), entity.SoilCategories...),
		States:         append([]string(nil), entity.States...),
	}
}

// Score は降雨・気温・土壌のスコアを合計します。
func Score(q entity.YieldQuery) decimal.Decimal {
	rainfallScore := decimal.NewFromFloat(q.RainfallMm).Mul(rainfallWeight)

	tempScore := tempOutside
	if q.TemperatureC > minOptimalTempC && q.TemperatureC < maxOptimalTempC {
		tempScore = tempOptimal
	}

	soilScore := soilOther
	if q.SoilCategory == alluvial {
		soilScore = soilAlluvial
	}

	return rainfallScore.Add(tempScore).Add(soilScore)
}

// Simulate は収量推定の本体です。乱数や時刻には依存しません。
func Simulate(q entity.YieldQuery) entity.YieldEstimate {
	score := Score(q)
	factor := factorBase.Add(score.Mul(factorWeight))

	unit := entity.UnitTonsPerHectare
	if q.Crop == sugarcane {
		unit = entity.UnitTonsPerAcre
	}

	// Round は0から遠い方へ丸める（正の値では四捨五入）
	yield, _ := decimal.NewFromFloat(entity.BaseYield(q.Crop)).Mul(factor).Round(1).Float64()

	return entity.YieldEstimate{
		Crop:       q.Crop,
		Yield:      yield,
		Unit:       unit,
		Confidence: confidence(score),
		Rating:     rate(score),
		Advice:     advise(q, score),
	}
}

// rate は厳密な大なり比較で段階を決めます。境界値は一つ下の段階になります。
func rate(score decimal.Decimal) entity.Rating {
	switch {
	case score.GreaterThan(excellentAbove):
		return entity.RatingExcellent
	case score.GreaterThan(goodAbove):
		return entity.RatingGood
	case score.GreaterThan(averageAbove):
		return entity.RatingAverage
	default:
		return entity.RatingPoor
	}
}

func confidence(score decimal.Decimal) int {
	c := int(confidenceBase.Add(score.Mul(confidenceStep)).Round(0).IntPart())
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

func advise(q entity.YieldQuery, score decimal.Decimal) []string {
	rainfall := adviceAdequateRainfall
	if score.LessThan(lowRainfall) {
		rainfall = adviceLowRainfall
	}

	temp := adviceOptimalTemp
	switch {
	case q.TemperatureC < minOptimalTempC:
		temp = adviceCold
	case q.TemperatureC > maxOptimalTempC:
		temp = adviceHot
	}

	soil := adviceCompost
	if q.SoilCategory == alluvial {
		soil = adviceAlluvial
	}

	return []string{rainfall, temp, soil}
}
