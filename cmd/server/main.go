package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"nethra_backend/internal/app/di"
	"nethra_backend/internal/app/router"
	advisorhandler "nethra_backend/internal/feature/advisor/transport/handler"
	advisorusecase "nethra_backend/internal/feature/advisor/usecase"
	croprechandler "nethra_backend/internal/feature/croprec/transport/handler"
	croprecusecase "nethra_backend/internal/feature/croprec/usecase"
	diseasehandler "nethra_backend/internal/feature/disease/transport/handler"
	diseaseusecase "nethra_backend/internal/feature/disease/usecase"
	equipmenthandler "nethra_backend/internal/feature/equipment/transport/handler"
	equipmentusecase "nethra_backend/internal/feature/equipment/usecase"
	fertilizerhandler "nethra_backend/internal/feature/fertilizer/transport/handler"
	fertilizerusecase "nethra_backend/internal/feature/fertilizer/usecase"
	mandihandler "nethra_backend/internal/feature/mandi/transport/handler"
	mandiusecase "nethra_backend/internal/feature/mandi/usecase"
	"nethra_backend/internal/feature/soil/adapters/imaging"
	soilhandler "nethra_backend/internal/feature/soil/transport/handler"
	soilusecase "nethra_backend/internal/feature/soil/usecase"
	yieldhandler "nethra_backend/internal/feature/yield/transport/handler"
	yieldusecase "nethra_backend/internal/feature/yield/usecase"
	infradb "nethra_backend/internal/platform/db"
	"nethra_backend/internal/platform/http/handler"
	"nethra_backend/internal/platform/logging"
	"nethra_backend/internal/platform/metrics"
	infraredis "nethra_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".envが見つからないため環境変数を使用します")
	}
	logger := logging.Setup(logging.LoadConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		slog.Error("サーバーが異常終了しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	m := metrics.New()

	// db
	dbCfg := infradb.LoadConfigFromEnv()
	db, err := infradb.Open(dbCfg)
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redisが利用できないためキャッシュなしで起動します", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Redisクライアントのクローズに失敗", "error", err)
			}
		}()
	}

	// Repository（mandiはRedisキャッシュでラップ）
	mandiRepo := di.NewMandiRepository(db, rdb)
	equipmentRepo := di.NewEquipmentRepository(db)
	if dbCfg.RunMigrations || dbCfg.SeedData {
		if err := di.MigrateAndSeed(ctx, db, mandiRepo, equipmentRepo); err != nil {
			return err
		}
	}

	// 外部API
	mlspace := di.NewMLSpaceClient(m)
	plantID := di.NewPlantIDClient(m)

	// Usecase / Handler
	handlers := router.Handlers{
		Soil:       soilhandler.NewSoilHandler(soilusecase.NewSoilUsecase(imaging.NewDecoder())),
		Yield:      yieldhandler.NewYieldHandler(yieldusecase.NewYieldUsecase()),
		Fertilizer: fertilizerhandler.NewFertilizerHandler(fertilizerusecase.NewFertilizerUsecase(mlspace)),
		CropRec:    croprechandler.NewCropRecHandler(croprecusecase.NewCropRecUsecase(mlspace)),
		Disease:    diseasehandler.NewDiseaseHandler(diseaseusecase.NewDiseaseUsecase(plantID)),
		Mandi:      mandihandler.NewMandiHandler(mandiusecase.NewMandiUsecase(mandiRepo)),
		Equipment:  equipmenthandler.NewEquipmentHandler(equipmentusecase.NewEquipmentUsecase(equipmentRepo)),
	}

	advisor, err := di.NewGeminiAdvisor(ctx, m)
	if err != nil {
		return err
	}
	if advisor != nil {
		handlers.Advisor = advisorhandler.NewAdvisorHandler(advisorusecase.NewAdvisorUsecase(advisor))
		slog.Info("栽培アドバイスを有効化しました")
	}

	checks := map[string]handler.CheckFunc{
		"db": func(ctx context.Context) error { return infradb.Ping(db.WithContext(ctx)) },
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		checks["redis"] = nil
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.NewRouter(handlers, router.Options{
		Logger:             logger,
		Metrics:            m,
		AllowOrigins:       router.LoadAllowOrigins(),
		Checks:             checks,
		MaxMultipartMemory: soilusecase.MaxImageSize,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("サーバーを起動します", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("シャットダウンします")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
