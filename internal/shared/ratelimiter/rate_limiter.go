// Package ratelimiter は従量課金APIへの呼び出し頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は呼び出し前に必要なら待機するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は固定ウィンドウ方式で interval あたり limit 回まで呼び出しを許可します。
// 複数のgoroutineから安全に使えます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // ウィンドウの長さ
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
		sleep:     sleepCtx,
	}
}

// Wait は上限に達していればウィンドウが切り替わるまで待機します。
// 待機中にctxがキャンセルされた場合はそのエラーを返し、枠は消費しません。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limit <= 0 {
		return ctx.Err()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rl.mu.Lock()
		now := rl.now()
		// interval を過ぎたらカウントリセット
		if now.Sub(rl.lastReset) >= rl.interval {
			rl.count = 0
			rl.lastReset = now
		}
		if rl.count < rl.limit {
			rl.count++
			rl.mu.Unlock()
			return nil
		}
		wait := rl.interval - now.Sub(rl.lastReset)
		rl.mu.Unlock()

		slog.Warn("レート制限に到達、待機します", "limit", rl.limit, "wait", wait)
		if err := rl.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
