// Package requestid はリクエストごとに相関IDを付与するGinミドルウェアを提供します。
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderName はリクエストIDを受け渡すHTTPヘッダーです。
	HeaderName = "X-Request-ID"
	// ContextKey はgin.Contextに保存するキーです。
	ContextKey = "requestID"
)

// Middleware はリクエストIDを決定してコンテキストとレスポンスヘッダーに設定します。
// クライアントが有効なUUIDを送った場合はそれを引き継ぎます。
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextKey, id)
		c.Header(HeaderName, id)
		c.Next()
	}
}

// Get はコンテキストに保存されたリクエストIDを返します。未設定の場合は空文字です。
func Get(c *gin.Context) string {
	return c.GetString(ContextKey)
}
