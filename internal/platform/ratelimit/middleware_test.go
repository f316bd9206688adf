package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubLimiter は固定の判定結果を返すLimiterです。
type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		limiter        *stubLimiter
		expectedStatus int
	}{
		{name: "allowed", limiter: &stubLimiter{allow: true}, expectedStatus: http.StatusNoContent},
		{name: "denied", limiter: &stubLimiter{allow: false}, expectedStatus: http.StatusTooManyRequests},
		{name: "limiter error fails open", limiter: &stubLimiter{err: errors.New("redis down")}, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Middleware(tt.limiter))
			r.POST("/analyze", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
			req.RemoteAddr = "192.0.2.10:5555"

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, []string{"192.0.2.10"}, tt.limiter.keys)
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":"`+MsgTooManyRequests+`"}`, w.Body.String())
			}
		})
	}
}
