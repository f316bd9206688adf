package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured はRedisの接続先が設定されていない場合に返されます。
var ErrNotConfigured = errors.New("redis is not configured")

// NewRedisClient はRedisクライアントを生成し、接続を確認します。
// addrが空の場合はErrNotConfiguredを返し、呼び出し元はRedisなしで動作を続けます。
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
