// Package breaker は外部API呼び出し用のサーキットブレーカーを提供します。
package breaker

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"nethra_backend/internal/platform/metrics"
)

// ErrUnavailable はブレーカーが開いていて呼び出しを行わなかったことを示します。
var ErrUnavailable = errors.New("upstream temporarily unavailable")

// Config はブレーカーのしきい値です。
type Config struct {
	Fails    int           // 連続失敗数がこの値に達すると開く
	Timeout  time.Duration // 開いてから半開になるまでの時間
	Interval time.Duration // 閉状態でカウンタをリセットする周期
}

// LoadConfig は環境変数 CB_FAILS / CB_OPEN_MS / CB_INTERVAL_MS から設定を読み込みます。
func LoadConfig() Config {
	return Config{
		Fails:    envInt("CB_FAILS", 5),
		Timeout:  time.Duration(envInt("CB_OPEN_MS", 30000)) * time.Millisecond,
		Interval: time.Duration(envInt("CB_INTERVAL_MS", 60000)) * time.Millisecond,
	}
}

// New は名前付きのサーキットブレーカーを生成します。状態遷移はログとメトリクスに記録します。
// m はnilでも構いません。
func New(name string, cfg Config, m *metrics.Metrics) *gobreaker.CircuitBreaker {
	fails := cfg.Fails
	if fails <= 0 {
		fails = 5
	}
	m.SetBreakerState(name, int(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("サーキットブレーカーの状態が変化", "name", name, "from", from.String(), "to", to.String())
			m.SetBreakerState(name, int(to))
		},
	})
}

// Execute はブレーカー経由でfnを実行し、型付きの結果を返します。
// ブレーカーが開いている場合は ErrUnavailable をラップして返します。
func Execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	if cb == nil {
		return fn()
	}
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, errors.Join(ErrUnavailable, err)
		}
		return zero, err
	}
	out, ok := res.(T)
	if !ok {
		return zero, nil
	}
	return out, nil
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
