package gemini

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はGeminiクライアントの設定です。
type Config struct {
	Enabled bool          // false の場合ルートを登録しない
	APIKey  string        // 空の場合はADC（Vertex AI）を使用
	Model   string        // 生成モデル名
	Timeout time.Duration // 1リクエストあたりのタイムアウト
}

// LoadConfig は環境変数 GEMINI_ENABLED, GEMINI_API_KEY, GEMINI_MODEL から設定を読み込みます。
func LoadConfig() Config {
	enabled, _ := strconv.ParseBool(os.Getenv("GEMINI_ENABLED"))
	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = DefaultModel
	}
	return Config{
		Enabled: enabled,
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   model,
		Timeout: 30 * time.Second,
	}
}
