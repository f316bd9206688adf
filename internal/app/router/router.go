package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "islamic_finance_backend/internal/feature/analysis/transport/handler"
	platformhandler "islamic_finance_backend/internal/platform/http/handler"
	jwtmw "islamic_finance_backend/internal/platform/jwt"
	"islamic_finance_backend/internal/platform/ratelimit"
	"islamic_finance_backend/internal/platform/requestid"
	"islamic_finance_backend/internal/web"
)

// Options はルーターの任意機能の設定です。
type Options struct {
	Limiter     ratelimit.Limiter // nilの場合はレート制限なし
	JWTSecret   string            // 空の場合はJSON APIを認証なしで公開
	CORSOrigins []string          // 空の場合はCORSを設定しない
	// TrustedProxies はX-Forwarded-Forを信頼するプロキシ（IPまたはCIDR）です。
	// 空の場合は接続元IPだけをクライアントIPとして扱います。
	TrustedProxies []string
}

func NewRouter(page *analysishandler.PageHandler, api *analysishandler.AnalysisHandler,
	health *platformhandler.HealthHandler, opts Options) *gin.Engine {
	r := gin.Default()
	// レート制限のキーになるため、信頼しないピアのX-Forwarded-Forは無視する
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		slog.Error("TRUSTED_PROXIESが不正なため、プロキシを信頼しません", "error", err, "trusted_proxies", opts.TrustedProxies)
		_ = r.SetTrustedProxies(nil)
	}
	r.SetHTMLTemplate(web.Templates())
	r.Use(requestid.Middleware())

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "Content-Type", requestid.HeaderName},
			ExposeHeaders: []string{requestid.HeaderName},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	// 分析はモデルAPIの課金が発生するためレート制限をかける。
	// 入力エラーで枠を消費しないよう、検証を先に通す。
	limited := func(precheck, h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.Limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{precheck, ratelimit.Middleware(opts.Limiter), h}
	}

	// ブラウザ向けUI
	r.GET("/", page.Index)
	r.POST("/analyze", limited(page.Precheck, page.Analyze)...)
	r.POST("/download", page.Download)

	// JSON API（JWT_SECRETが設定されている場合は認証必須）
	v1 := r.Group("/v1")
	v1.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		v1.POST("/analyses", limited(api.Precheck, api.Create)...)
	}

	return r
}
