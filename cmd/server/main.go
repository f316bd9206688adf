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

	redisv9 "github.com/redis/go-redis/v9"

	"islamic_finance_backend/internal/app/di"
	"islamic_finance_backend/internal/app/router"
	"islamic_finance_backend/internal/config"
	analysishandler "islamic_finance_backend/internal/feature/analysis/transport/handler"
	analysisusecase "islamic_finance_backend/internal/feature/analysis/usecase"
	platformhandler "islamic_finance_backend/internal/platform/http/handler"
	"islamic_finance_backend/internal/platform/logger"
	infraredis "islamic_finance_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	config.LoadDotEnv(".env")
	cfg := config.LoadConfig()
	logger.Setup(os.Stdout, cfg.LogLevel)

	// APIキーチェック（未設定やサンプル値のままなら起動しない）
	if err := cfg.Validate(); err != nil {
		slog.Error("API key not found! Please add your API key to the .env file.", "error", err, "provider", cfg.Provider)
		os.Exit(1)
	}

	ctx := context.Background()

	// Model gateway
	gateway, err := di.NewModelGateway(ctx, cfg)
	if err != nil {
		slog.Error("モデルゲートウェイの初期化に失敗", "error", err)
		os.Exit(1)
	}

	// Redis（レート制限カウンタ用、任意）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		if !errors.Is(err, infraredis.ErrNotConfigured) {
			slog.Warn("Redis unavailable. Falling back to in-process rate limiting.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}
	limiter, backend := di.NewLimiter(rdb, cfg)

	// Usecase
	analysisUC := analysisusecase.NewAnalysisUsecase(gateway)

	// Handler
	pageH := analysishandler.NewPageHandler(analysisUC)
	apiH := analysishandler.NewAnalysisHandler(analysisUC)
	healthH := platformhandler.NewHealthHandler(cfg.Provider, backend)

	// ルータ生成
	r := router.NewRouter(pageH, apiH, healthH, router.Options{
		Limiter:        limiter,
		JWTSecret:      cfg.JWTSecret,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	})

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. The JSON API is served without authentication.")
	}

	// WriteTimeoutはモデルの応答待ちより長くする
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "provider", cfg.Provider, "rate_limit", backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.LLMTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
