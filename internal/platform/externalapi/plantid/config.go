// Package plantid はplant.id（Kindwise）健康診断APIのクライアントを提供します。
package plantid

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL はplant.id API v3のベースURLです。
const DefaultBaseURL = "https://plant.id/api/v3"

// Config はplant.idクライアントの設定です。
type Config struct {
	APIKey        string        // Api-Key ヘッダーに設定するキー
	BaseURL       string        // 例: "https://plant.id/api/v3"
	Timeout       time.Duration // HTTPリクエストのタイムアウト
	RatePerMinute int           // 1分あたりの最大呼び出し回数（従量課金対策）
}

// LoadConfig は環境変数からplant.idの設定を読み込みます。
// PLANT_ID_API_KEY が未設定の場合は KINDWISE_API_KEY を使います。
func LoadConfig() Config {
	key := os.Getenv("PLANT_ID_API_KEY")
	if key == "" {
		key = os.Getenv("KINDWISE_API_KEY")
	}
	base := strings.TrimRight(os.Getenv("PLANT_ID_BASE_URL"), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	rate := 10
	if v, err := strconv.Atoi(os.Getenv("PLANT_ID_RATE_PER_MINUTE")); err == nil && v > 0 {
		rate = v
	}
	return Config{
		APIKey:        key,
		BaseURL:       base,
		Timeout:       30 * time.Second,
		RatePerMinute: rate,
	}
}
