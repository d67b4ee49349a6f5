// Package domain はequipmentフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrNotFound は指定IDの機材が存在しないことを示します。
	ErrNotFound = errors.New("equipment not found")
	// ErrInvalidSort は未対応の並び順が指定されたことを示します。
	ErrInvalidSort = errors.New("sort must be one of rating, priceAsc, priceDsc")
	// ErrInvalidCategory は未知のカテゴリが指定されたことを示します。
	ErrInvalidCategory = errors.New("unknown equipment category")
)
