// Package domain はdiseaseフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrEmptyImage は画像が空、またはbase64として解釈できないことを示します。
	ErrEmptyImage = errors.New("image is empty or not valid base64")
	// ErrInvalidResponse は診断APIの応答に result が含まれないことを示します。
	ErrInvalidResponse = errors.New("invalid API response")
	// ErrUpstream は診断APIの呼び出しに失敗したことを示します。
	ErrUpstream = errors.New("plant health service failed")
)
