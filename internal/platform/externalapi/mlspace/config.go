// Package mlspace はHugging Face Space上の推論API（肥料・作物推奨）のクライアントを提供します。
package mlspace

import (
	"os"
	"strings"
	"time"
)

// DefaultBaseURL は推論SpaceのデフォルトURLです。
const DefaultBaseURL = "https://sunainakancharla-nethra-yield-model.hf.space"

// Config は推論APIクライアントの設定です。
type Config struct {
	BaseURL string        // 例: "https://<space>.hf.space"
	Timeout time.Duration // HTTPリクエストのタイムアウト
}

// LoadConfig は環境変数 ML_SPACE_BASE_URL から設定を読み込みます。
// Spaceはコールドスタートに時間がかかるためタイムアウトは長めです。
func LoadConfig() Config {
	base := strings.TrimRight(os.Getenv("ML_SPACE_BASE_URL"), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{BaseURL: base, Timeout: 30 * time.Second}
}
