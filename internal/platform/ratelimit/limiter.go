// Package ratelimit はクライアントごとの分析リクエスト数を固定ウィンドウで制限します。
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter はキー（クライアントIP）ごとにリクエストを許可するかを判定します。
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter はRedisのINCR/EXPIREで固定ウィンドウのカウンタを管理します。
// 複数インスタンスで上限を共有できます。
type RedisLimiter struct {
	rdb       *redis.Client
	limit     int
	window    time.Duration
	namespace string
	now       func() time.Time
}

// NewRedisLimiter はRedisLimiterを生成します。
// windowが0以下の場合は1分、namespaceが空の場合は"ratelimit"を使います。
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration, namespace string) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if namespace == "" {
		namespace = "ratelimit"
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, namespace: namespace, now: time.Now}
}

// Allow はカウンタを1増やし、上限以内であればtrueを返します。
// ウィンドウ内の最初のリクエストでキーに有効期限を設定します。
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr %s: %w", k, err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire %s: %w", k, err)
		}
	}
	return n <= int64(l.limit), nil
}

// windowKey は現在のウィンドウ番号を含むキーを生成します。
func (l *RedisLimiter) windowKey(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s:%s:%d", l.namespace, safe(key), slot)
}

// safe はRedisキーで問題になる文字を置き換えます。IPv6アドレスのコロンも対象です。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
