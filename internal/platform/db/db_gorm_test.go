package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestLoadConfigFromEnv_Postgres は環境変数からpostgres設定が読み込まれることを検証します。
func TestLoadConfigFromEnv_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/nethra")
	t.Setenv("DB_PATH", "")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("SEED_REFERENCE_DATA", "")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/nethra", cfg.DSN)
	assert.True(t, cfg.RunMigrations)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 60*time.Second, cfg.ConnectTimeout)
}

// TestLoadConfigFromEnv_SQLiteDefault はDATABASE_URLがない場合にsqliteが選ばれることを検証します。
func TestLoadConfigFromEnv_SQLiteDefault(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SEED_REFERENCE_DATA", "true")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "nethra.db", cfg.Path)
	assert.True(t, cfg.SeedData)
}

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		dialect string
	}{
		{"postgres", Config{Driver: DriverPostgres, DSN: "postgres://localhost/x"}, false, "postgres"},
		{"postgres without dsn", Config{Driver: DriverPostgres}, true, ""},
		{"sqlite", Config{Driver: DriverSQLite, Path: ":memory:"}, false, "sqlite"},
		{"unknown", Config{Driver: "mysql"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := Dialector(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, d.Name())
		})
	}
}

func TestDialector_UnsupportedIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := Dialector(Config{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// リトライ待ちがあるため並列にしない

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attemptCount)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後にエラーが返されることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.GreaterOrEqual(t, attemptCount, 1)
}

// TestOpen_SQLiteInMemory はsqliteのインメモリDBに接続してマイグレーションできることを検証します。
func TestOpen_SQLiteInMemory(t *testing.T) {
	t.Parallel()

	type probe struct {
		ID   uint
		Name string
	}

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:", ConnectTimeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, Migrate(db, &probe{}))
	require.NoError(t, db.Create(&probe{Name: "x"}).Error)
	require.NoError(t, Ping(db))

	var n int64
	require.NoError(t, db.Model(&probe{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
