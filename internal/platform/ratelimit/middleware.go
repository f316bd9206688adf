package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgTooManyRequests は上限超過時のメッセージです。
const MsgTooManyRequests = "Too many analysis requests. Please wait a minute and try again."

// Middleware はクライアントIPごとにLimiterで判定するGinミドルウェアを返します。
// Limiterがエラーを返した場合はリクエストを通します（カウンタの障害で分析を止めない）。
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			slog.Warn("レート制限の判定に失敗", "error", err, "remote_addr", ip)
			c.Next()
			return
		}
		if !ok {
			slog.Info("レート制限により拒否", "remote_addr", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": MsgTooManyRequests})
			return
		}
		c.Next()
	}
}
