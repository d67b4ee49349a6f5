package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"nethra_backend/internal/feature/mandi/domain/entity"
)

// mockMandiRepository はテスト用のMandiRepositoryモック実装です。
type mockMandiRepository struct {
	findAllFn     func(ctx context.Context) ([]entity.MandiPrice, error)
	upsertBatchFn func(ctx context.Context, prices []entity.MandiPrice) error
}

func (m *mockMandiRepository) FindAll(ctx context.Context) ([]entity.MandiPrice, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockMandiRepository) UpsertBatch(ctx context.Context, prices []entity.MandiPrice) error {
	if m.upsertBatchFn != nil {
		return m.upsertBatchFn(ctx, prices)
	}
	return nil
}

func fixedTTL(d time.Duration) TTLFunc {
	return func() time.Duration { return d }
}

var wheat = []entity.MandiPrice{
	{Crop: "Wheat", Mandi: "Azadpur", State: "Delhi", ModalPrice: 2240, Trend: entity.TrendUp, Change: 2.3},
}

// TestNewCachingMandiRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingMandiRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingMandiRepository(nil, nil, &mockMandiRepository{}, "")

	if repo.namespace != "mandi" {
		t.Errorf("expected namespace %q, got %q", "mandi", repo.namespace)
	}
	if d := repo.ttl(); d <= 0 || d > 24*time.Hour {
		t.Errorf("expected default TTL within a day, got %v", d)
	}

	custom := NewCachingMandiRepository(nil, fixedTTL(time.Minute), &mockMandiRepository{}, "custom")
	if custom.namespace != "custom" || custom.ttl() != time.Minute {
		t.Errorf("custom values not preserved: %q %v", custom.namespace, custom.ttl())
	}
}

// TestCachingMandiRepository_FindAll_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingMandiRepository_FindAll_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockMandiRepository{
		findAllFn: func(ctx context.Context) ([]entity.MandiPrice, error) { return wheat, nil },
	}

	repo := NewCachingMandiRepository(nil, fixedTTL(time.Hour), inner, "mandi")
	prices, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 1 {
		t.Errorf("expected 1 price, got %d", len(prices))
	}
}

// TestCachingMandiRepository_FindAll_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingMandiRepository_FindAll_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(wheat)
	mock.ExpectGet("mandi:prices:all").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockMandiRepository{
		findAllFn: func(ctx context.Context) ([]entity.MandiPrice, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingMandiRepository(rdb, fixedTTL(time.Hour), inner, "mandi")
	prices, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(prices) != 1 || prices[0].Crop != "Wheat" || prices[0].Trend != entity.TrendUp {
		t.Errorf("unexpected prices from cache: %+v", prices)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMandiRepository_FindAll_CacheMiss はキャッシュミス時にDBから取得しTTL付きで保存することを検証します。
func TestCachingMandiRepository_FindAll_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(wheat)
	mock.ExpectGet("mandi:prices:all").RedisNil()
	mock.ExpectSet("mandi:prices:all", expectedJSON, 3*time.Hour).SetVal("OK")

	inner := &mockMandiRepository{
		findAllFn: func(ctx context.Context) ([]entity.MandiPrice, error) { return wheat, nil },
	}

	repo := NewCachingMandiRepository(rdb, fixedTTL(3*time.Hour), inner, "mandi")
	prices, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 1 {
		t.Errorf("expected 1 price, got %d", len(prices))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMandiRepository_FindAll_InnerError は内部リポジトリのエラーが伝播されることを検証します。
func TestCachingMandiRepository_FindAll_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("mandi:prices:all").RedisNil()

	inner := &mockMandiRepository{
		findAllFn: func(ctx context.Context) ([]entity.MandiPrice, error) { return nil, expectedErr },
	}

	repo := NewCachingMandiRepository(rdb, fixedTTL(time.Hour), inner, "mandi")
	_, err := repo.FindAll(context.Background())
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingMandiRepository_FindAll_CorruptedCache は破損したキャッシュを削除しDBにフォールバックすることを検証します。
func TestCachingMandiRepository_FindAll_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(wheat)
	mock.ExpectGet("mandi:prices:all").SetVal("invalid json")
	mock.ExpectDel("mandi:prices:all").SetVal(1)
	mock.ExpectSet("mandi:prices:all", expectedJSON, time.Hour).SetVal("OK")

	inner := &mockMandiRepository{
		findAllFn: func(ctx context.Context) ([]entity.MandiPrice, error) { return wheat, nil },
	}

	repo := NewCachingMandiRepository(rdb, fixedTTL(time.Hour), inner, "mandi")
	if _, err := repo.FindAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMandiRepository_UpsertBatch_InnerError は内部リポジトリのエラーが伝播されることを検証します。
func TestCachingMandiRepository_UpsertBatch_InnerError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("upsert error")
	inner := &mockMandiRepository{
		upsertBatchFn: func(ctx context.Context, prices []entity.MandiPrice) error { return expectedErr },
	}

	repo := NewCachingMandiRepository(nil, fixedTTL(time.Hour), inner, "mandi")
	if err := repo.UpsertBatch(context.Background(), wheat); !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingMandiRepository_UpsertBatch_CacheInvalidation はUpsertBatch後に価格キャッシュが無効化されることを検証します。
func TestCachingMandiRepository_UpsertBatch_CacheInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "mandi:prices:*", 200).SetVal([]string{"mandi:prices:all"}, 0)
	mock.ExpectDel("mandi:prices:all").SetVal(1)

	repo := NewCachingMandiRepository(rdb, fixedTTL(time.Hour), &mockMandiRepository{}, "mandi")
	if err := repo.UpsertBatch(context.Background(), wheat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMandiRepository_UpsertBatch_ScanErrorIsIgnored はキャッシュ無効化の失敗が呼び出し元に伝播しないことを検証します。
func TestCachingMandiRepository_UpsertBatch_ScanErrorIsIgnored(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "mandi:prices:*", 200).SetErr(errors.New("connection refused"))

	repo := NewCachingMandiRepository(rdb, fixedTTL(time.Hour), &mockMandiRepository{}, "mandi")
	if err := repo.UpsertBatch(context.Background(), wheat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
