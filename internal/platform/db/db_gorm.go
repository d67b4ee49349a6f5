// Package db はgormによるデータベース接続を提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath     = "nethra.db"
	defaultConnectTimeout = 60 * time.Second
)

// ErrUnsupportedDriver は DB_DRIVER が未対応の値であることを示します。
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config はデータベース接続設定です。
type Config struct {
	Driver         string        // postgres | sqlite
	DSN            string        // postgres用の接続文字列（DATABASE_URL）
	Path           string        // sqlite用のファイルパス（DB_PATH）
	ConnectTimeout time.Duration // 接続リトライを諦めるまでの時間
	RunMigrations  bool          // 起動時にAutoMigrateを行うか
	SeedData       bool          // 起動時に参照データを投入するか
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
// DB_DRIVER 未設定時は DATABASE_URL があればpostgres、なければsqliteです。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:         strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))),
		DSN:            os.Getenv("DATABASE_URL"),
		Path:           os.Getenv("DB_PATH"),
		ConnectTimeout: defaultConnectTimeout,
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
		SeedData:       os.Getenv("SEED_REFERENCE_DATA") == "true",
	}
	if cfg.Driver == "" {
		if cfg.DSN != "" {
			cfg.Driver = DriverPostgres
		} else {
			cfg.Driver = DriverSQLite
		}
	}
	if cfg.Path == "" {
		cfg.Path = defaultSQLitePath
	}
	return cfg
}

// Dialector は設定に対応するgormのDialectorを返します。
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("DATABASE_URL is required for postgres")
		}
		return postgres.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Opener はDSN相当の識別子からDBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は指数バックオフで接続を再試行し、timeoutを過ぎたらエラーを返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = timeout

	var db *gorm.DB
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = open(dsn)
		return err
	}, bo, func(err error, next time.Duration) {
		slog.Warn("DB接続に失敗、リトライします", "error", err, "retry_in", next)
	})
	if err != nil {
		return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
	}
	return db, nil
}

// Open は設定に従ってDBへ接続します。
func Open(cfg Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	db, err := ConnectWithRetry(cfg.Driver, timeout, func(string) (*gorm.DB, error) {
		return gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	})
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		// sqliteは単一コネクションで書き込み競合を避ける
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	slog.Info("DB接続に成功", "driver", cfg.Driver)
	return db, nil
}

// Migrate は渡されたモデルのテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Ping はDBへの疎通を確認します。
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
