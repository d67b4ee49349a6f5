// Package domain はsoilフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// ErrDecode は入力バイト列を画像としてデコードできなかったことを示します。
// ローカルでは回復できないため、呼び出し元にそのまま伝播させます。
var ErrDecode = errors.New("image could not be decoded")
