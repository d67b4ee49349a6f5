// Package entity はdiseaseフィーチャーのドメインモデルと判定ルールを定義します。
package entity

import (
	"math"
	"slices"
)

// Severity は病害の深刻度です。
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Label は画面表示用の深刻度ラベルを返します。
func (s Severity) Label() string {
	switch s {
	case SeverityHigh:
		return "Severe Infection"
	case SeverityMedium:
		return "Moderate Disease"
	default:
		return "Healthy / Low Risk"
	}
}

// DiseaseSuggestion は診断APIが返した病害候補の1件です。
type DiseaseSuggestion struct {
	Name        string
	Probability float64  // 0〜1、不明なら0
	Description string   // 不明なら空
	Treatment   []string // 化学的処置、不明ならnil
}

// HealthAssessment は診断APIの結果から必要な部分だけを取り出したものです。
type HealthAssessment struct {
	IsPlantProbability float64 // 不明なら0
	Suggestions        []DiseaseSuggestion
}

// Diagnosis は利用者に返す診断結果です。
type Diagnosis struct {
	Name        string
	Confidence  int
	Severity    Severity
	Description string
	Treatment   []string
	Prevention  []string
}

const (
	healthyName         = "Healthy Plant"
	healthyDescription  = "No visible disease detected."
	defaultIsPlant      = 0.9
	defaultProbability  = 0.5
	defaultDescription  = "Disease detected."
	defaultTreatment    = "Apply recommended fungicide"
	highConfidenceAbove = 80
	lowConfidenceBelow  = 50
)

var (
	healthyPrevention = []string{
		"Maintain proper watering schedule",
		"Ensure adequate sunlight",
		"Monitor leaves weekly",
	}
	diseasePrevention = []string{
		"Avoid overwatering",
		"Ensure proper drainage",
		"Use certified seeds",
	}
)

// Diagnose は診断APIの結果を表示用の診断に変換します。
// 候補がなければ健康と判定し、あれば先頭の候補を採用します。
// 確率が0（欠落を含む）の場合は既定値を使います。
func Diagnose(a HealthAssessment) Diagnosis {
	if len(a.Suggestions) == 0 {
		return Diagnosis{
			Name:        healthyName,
			Confidence:  percent(a.IsPlantProbability, defaultIsPlant),
			Severity:    SeverityLow,
			Description: healthyDescription,
			Treatment:   []string{},
			Prevention:  append([]string(nil), healthyPrevention...),
		}
	}

	s := a.Suggestions[0]
	conf := percent(s.Probability, defaultProbability)

	severity := SeverityMedium
	if conf > highConfidenceAbove {
		severity = SeverityHigh
	} else if conf < lowConfidenceBelow {
		severity = SeverityLow
	}

	desc := s.Description
	if desc == "" {
		desc = defaultDescription
	}
	// 空配列は空のまま返す
	treatment := slices.Clone(s.Treatment)
	if s.Treatment == nil {
		treatment = []string{defaultTreatment}
	}

	return Diagnosis{
		Name:        s.Name,
		Confidence:  conf,
		Severity:    severity,
		Description: desc,
		Treatment:   treatment,
		Prevention:  append([]string(nil), diseasePrevention...),
	}
}

// percent は確率を四捨五入した百分率にします（.5は切り上げ）。
func percent(p, def float64) int {
	if p == 0 || math.IsNaN(p) {
		p = def
	}
	return int(math.Floor(p*100 + 0.5))
}
