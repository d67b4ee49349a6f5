// Package domain はmandiフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// ErrInvalidSort は未対応の並び順が指定されたことを示します。
var ErrInvalidSort = errors.New("sort must be one of crop, price, change")
