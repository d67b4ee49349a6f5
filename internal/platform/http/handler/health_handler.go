// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// プロセスが応答できるかだけを返し、依存先は確認しません。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// CheckFunc は依存先（DB、Redisなど）への疎通確認です。
type CheckFunc func(ctx context.Context) error

// Readiness は /readyz 用のハンドラーを生成します。
// 登録されたチェックがすべて成功した場合のみ200を返し、1つでも失敗すれば503を返します。
// nilのチェックは「未構成」として扱い、失敗にはしません。
func Readiness(checks map[string]CheckFunc, timeout time.Duration) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		results := make(map[string]string, len(names))
		ready := true
		for _, name := range names {
			check := checks[name]
			if check == nil {
				results[name] = "disabled"
				continue
			}
			if err := check(ctx); err != nil {
				slog.Warn("レディネスチェックに失敗", "check", name, "error", err)
				results[name] = "down"
				ready = false
				continue
			}
			results[name] = "up"
		}

		status, label := http.StatusOK, "ready"
		if !ready {
			status, label = http.StatusServiceUnavailable, "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "checks": results})
	}
}
