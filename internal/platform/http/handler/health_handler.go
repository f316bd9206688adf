// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler は /healthz を処理します。
// モデルAPIへの疎通確認は課金が発生するため行わず、起動時に決まった構成だけを返します。
type HealthHandler struct {
	provider  string
	rateLimit string
}

// NewHealthHandler はHealthHandlerの新しいインスタンスを生成します。
// provider は "openai" / "gemini"、rateLimit は "redis" / "memory" / "disabled" です。
func NewHealthHandler(provider, rateLimit string) *HealthHandler {
	return &HealthHandler{provider: provider, rateLimit: rateLimit}
}

// Health はHTTPメソッドに応じてレスポンスし、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"provider":   h.provider,
			"rate_limit": h.rateLimit,
		})
	}
}
