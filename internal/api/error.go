// Package api はフィーチャー間で共有するHTTPレスポンス型を定義します。
package api

// ErrorResponse はすべてのエンドポイントで共通のエラーレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
