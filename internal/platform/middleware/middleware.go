// Package middleware はgin用の共通ミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nethra_backend/internal/platform/metrics"
)

const (
	// RequestIDHeader はリクエストIDを運ぶヘッダー名です。
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// RequestID はリクエストIDを付与します。クライアントが送ってきた値があればそれを使います。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID はコンテキストからリクエストIDを取得します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AccessLog は1リクエストごとにslogでアクセスログを出力します。
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Error("リクエスト処理でサーバーエラー", attrs...)
		case status >= 400:
			logger.Warn("リクエストがクライアントエラーで終了", attrs...)
		default:
			logger.Info("リクエスト完了", attrs...)
		}
	}
}

// Metrics はルート単位でリクエスト数とレイテンシを記録します。
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
