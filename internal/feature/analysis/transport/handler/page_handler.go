package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/prompt"
	"islamic_finance_backend/internal/platform/requestid"
	"islamic_finance_backend/internal/web"
)

// PageHandler はブラウザ向けの分析ページを処理します。
// 分析結果はサーバーに保持せず、リクエストごとにページを描画し直します。
type PageHandler struct {
	uc AnalysisUsecase
}

// NewPageHandler はPageHandlerの新しいインスタンスを生成します。
func NewPageHandler(uc AnalysisUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Index は入力欄にデフォルトの例を入れたページを表示します。
//
// エンドポイント: GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, PageData{
		Case: prompt.DefaultCase,
		Mode: string(entity.DefaultMode),
		View: ViewJSON,
	})
}

// Precheck はモデルを呼ばずに判定できる入力エラーのページを先に返すミドルウェアです。
// レート制限より前に置き、空のケースや不正な出力形式で枠を消費しないようにします。
func (h *PageHandler) Precheck(c *gin.Context) {
	if _, _, ok := h.readForm(c); !ok {
		c.Abort()
		return
	}
	c.Next()
}

// Analyze はフォームから送信されたケースを分析し、結果を含むページを表示します。
//
// エンドポイント: POST /analyze
// Content-Type: application/x-www-form-urlencoded
// フィールド: case, mode（structured|text）, view（json|formatted）
func (h *PageHandler) Analyze(c *gin.Context) {
	data, mode, ok := h.readForm(c)
	if !ok {
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), data.Case, mode)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCase) {
			data.Warning = MsgEmptyCase
			c.HTML(http.StatusOK, web.IndexTemplate, data)
			return
		}
		data.RequestID = requestid.Get(c)
		slog.Error("ケース分析に失敗", "error", err, "mode", mode, "request_id", data.RequestID)
		data.Error = MsgGenericError
		data.Hint = MsgHint
		c.HTML(http.StatusBadGateway, web.IndexTemplate, data)
		return
	}

	data.Result = newResultView(analysis, data.View)
	c.HTML(http.StatusOK, web.IndexTemplate, data)
}

// readForm はフォームを読み、出力形式とケース本文を検証します。
// 不正な場合は警告付きのページを書き込んでfalseを返します。
func (h *PageHandler) readForm(c *gin.Context) (PageData, entity.OutputMode, bool) {
	data := PageData{
		Case: c.PostForm("case"),
		Mode: c.DefaultPostForm("mode", string(entity.DefaultMode)),
		View: c.DefaultPostForm("view", ViewJSON),
	}

	mode, err := entity.ParseOutputMode(data.Mode)
	if err != nil {
		data.Mode = string(entity.DefaultMode)
		data.Warning = MsgInvalidMode
		c.HTML(http.StatusBadRequest, web.IndexTemplate, data)
		return data, "", false
	}

	if err := prompt.ValidateCase(data.Case); err != nil {
		data.Warning = MsgEmptyCase
		c.HTML(http.StatusOK, web.IndexTemplate, data)
		return data, "", false
	}
	return data, mode, true
}

// Download はテキスト結果を固定ファイル名のプレーンテキストとして返します。
// 結果はサーバーに保存していないため、ページから本文を送り返してもらいます。
//
// エンドポイント: POST /download
// フィールド: result
func (h *PageHandler) Download(c *gin.Context) {
	// フォーム送信で改行がCRLFに変わるため、モデルの出力どおりLFに戻す
	result := strings.ReplaceAll(c.PostForm("result"), "\r\n", "\n")
	c.Header("Content-Disposition", `attachment; filename="`+DownloadFileName+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result))
}
