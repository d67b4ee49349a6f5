// Package domain はcroprecフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrInvalidQuery は推論に渡せない入力であることを示します。
	ErrInvalidQuery = errors.New("invalid crop recommendation query")
	// ErrUpstream は推論サービスの呼び出しに失敗したことを示します。
	ErrUpstream = errors.New("crop recommendation service failed")
)
