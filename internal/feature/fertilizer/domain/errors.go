// Package domain はfertilizerフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// ErrInvalidQuery は推論に渡せない入力であることを示します。
var ErrInvalidQuery = errors.New("invalid fertilizer query")

// ErrUpstream は推論サービスの呼び出しに失敗したことを示します。
var ErrUpstream = errors.New("fertilizer prediction service failed")
