// Package redis はキャッシュ用のRedisクライアントを生成します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured は REDIS_HOST が設定されていないことを示します。
var ErrNotConfigured = errors.New("redis is not configured")

// Config はRedis接続設定です。
type Config struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries uint64 // 初回を除く接続リトライ回数
}

// LoadConfig は環境変数 REDIS_HOST / REDIS_PORT / REDIS_PASSWORD から設定を読み込みます。
// REDIS_HOST が空の場合、Addrは空のままです。
func LoadConfig() Config {
	cfg := Config{Password: os.Getenv("REDIS_PASSWORD"), MaxRetries: 4}
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return cfg
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	cfg.Addr = host + ":" + port
	return cfg
}

// NewRedisClient は接続確認済みのクライアントを返します。
// 起動直後のRedis待ちを考慮して指数バックオフでPINGを再試行します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 10 * time.Second
	err := backoff.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}, backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx))
	if err != nil {
		slog.Error("Redis接続に失敗", "address", cfg.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis接続に成功", "address", cfg.Addr)
	return rdb, nil
}
