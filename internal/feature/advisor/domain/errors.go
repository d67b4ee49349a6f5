// Package domain はadvisorフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrInvalidInput は作物名または土壌名が不正であることを示します。
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream は生成APIの呼び出しに失敗したことを示します。
	ErrUpstream = errors.New("advisor upstream failed")
)
