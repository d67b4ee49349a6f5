// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	advisorhandler "nethra_backend/internal/feature/advisor/transport/handler"
	croprechandler "nethra_backend/internal/feature/croprec/transport/handler"
	diseasehandler "nethra_backend/internal/feature/disease/transport/handler"
	equipmenthandler "nethra_backend/internal/feature/equipment/transport/handler"
	fertilizerhandler "nethra_backend/internal/feature/fertilizer/transport/handler"
	mandihandler "nethra_backend/internal/feature/mandi/transport/handler"
	soilhandler "nethra_backend/internal/feature/soil/transport/handler"
	yieldhandler "nethra_backend/internal/feature/yield/transport/handler"
	"nethra_backend/internal/platform/http/handler"
	"nethra_backend/internal/platform/metrics"
	"nethra_backend/internal/platform/middleware"
)

// Handlers はルーターに登録するフィーチャーハンドラーです。
// Advisor はnilの場合ルートを登録しません。
type Handlers struct {
	Soil       *soilhandler.SoilHandler
	Yield      *yieldhandler.YieldHandler
	Fertilizer *fertilizerhandler.FertilizerHandler
	CropRec    *croprechandler.CropRecHandler
	Disease    *diseasehandler.DiseaseHandler
	Mandi      *mandihandler.MandiHandler
	Equipment  *equipmenthandler.EquipmentHandler
	Advisor    *advisorhandler.AdvisorHandler
}

// Options はミドルウェアと運用エンドポイントの設定です。
type Options struct {
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	AllowOrigins       []string
	Checks             map[string]handler.CheckFunc
	ReadyTimeout       time.Duration
	MaxMultipartMemory int64
}

// LoadAllowOrigins は CORS_ALLOW_ORIGINS（カンマ区切り）を読み込みます。未設定なら全許可です。
func LoadAllowOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS"))
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// NewRouter はミドルウェアとすべてのルートを登録したginエンジンを返します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = 2 * time.Second
	}

	r := gin.New()
	if opts.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = opts.MaxMultipartMemory
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Readiness(opts.Checks, opts.ReadyTimeout))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// 旧バックエンド互換
	if h.Disease != nil {
		r.POST("/v1/health", h.Disease.Health)
	}

	v1 := r.Group("/v1")
	if h.Soil != nil {
		v1.POST("/soil/classify", h.Soil.Classify)
		v1.GET("/soil/profiles", h.Soil.Profiles)
	}
	if h.Yield != nil {
		v1.POST("/yield/estimate", h.Yield.Estimate)
		v1.GET("/yield/options", h.Yield.Options)
	}
	if h.Fertilizer != nil {
		v1.POST("/fertilizer/predict", h.Fertilizer.Predict)
		v1.GET("/fertilizer/guide", h.Fertilizer.Guide)
	}
	if h.CropRec != nil {
		v1.POST("/crops/recommend", h.CropRec.Recommend)
	}
	if h.Disease != nil {
		v1.POST("/disease/detect", h.Disease.Detect)
	}
	if h.Mandi != nil {
		mandi := v1.Group("/mandi")
		mandi.GET("/prices", h.Mandi.List)
		mandi.GET("/summary", h.Mandi.Summary)
		mandi.GET("/filters", h.Mandi.Filters)
	}
	if h.Equipment != nil {
		eq := v1.Group("/equipment")
		eq.GET("", h.Equipment.List)
		eq.GET("/stats", h.Equipment.Stats)
		eq.GET("/categories", h.Equipment.Categories)
		eq.GET("/:id", h.Equipment.Get)
	}
	if h.Advisor != nil {
		v1.POST("/advisor/tips", h.Advisor.Tips)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
