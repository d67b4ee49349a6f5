// Package entity はadvisorフィーチャーのドメインモデルを定義します。
package entity

// CropAdvice は作物と土壌の組み合わせに対する栽培アドバイスです。
type CropAdvice struct {
	Crop    string // 対象作物
	Soil    string // 対象土壌
	Summary string // AI生成のアドバイス本文
}
