// Package logging はアプリケーション全体で使うslogロガーを構成します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config はログ出力の設定です。
type Config struct {
	Level  slog.Level // 出力する最小レベル
	Format string     // "json" または "text"
}

// LoadConfig は環境変数 LOG_LEVEL / LOG_FORMAT から設定を読み込みます。
// 未設定の場合は info / json になります。
func LoadConfig() Config {
	return Config{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))),
	}
}

// ParseLevel はレベル名をslog.Levelに変換します。不明な値はInfoです。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New は設定に従ったロガーを生成します。
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Setup はロガーを生成し、slogのデフォルトとして登録します。
func Setup(cfg Config) *slog.Logger {
	logger := New(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
