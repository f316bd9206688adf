// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/prompt"
	"islamic_finance_backend/internal/feature/analysis/transport/http/dto"
	"islamic_finance_backend/internal/platform/requestid"
)

// AnalysisUsecase はケース分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, caseText string, mode entity.OutputMode) (*entity.Analysis, error)
}

// AnalysisHandler はJSON APIでのケース分析リクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Precheck はモデルを呼ばずに判定できる入力エラーを先に返すミドルウェアです。
// レート制限より前に置き、不正な入力で枠を消費しないようにします。
func (h *AnalysisHandler) Precheck(c *gin.Context) {
	if _, _, ok := h.readRequest(c); !ok {
		c.Abort()
		return
	}
	c.Next()
}

// Create はケースを分析して結果を返します。
//
// エンドポイント: POST /v1/analyses
// Content-Type: application/json
func (h *AnalysisHandler) Create(c *gin.Context) {
	caseText, mode, ok := h.readRequest(c)
	if !ok {
		return
	}

	rid := requestid.Get(c)
	analysis, err := h.uc.Analyze(c.Request.Context(), caseText, mode)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCase) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgEmptyCase})
			return
		}
		slog.Error("ケース分析に失敗", "error", err, "mode", mode, "request_id", rid)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: MsgGenericError, Hint: MsgHint, RequestID: rid})
		return
	}

	c.JSON(http.StatusOK, toResponse(analysis))
}

// readRequest はリクエストボディを読み、ケース本文と出力形式を検証します。
// 不正な場合はエラーレスポンスを書き込んでfalseを返します。
// ボディはコンテキストにキャッシュされるため、PrecheckとCreateの両方から読めます。
func (h *AnalysisHandler) readRequest(c *gin.Context) (string, entity.OutputMode, bool) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		slog.Warn("分析リクエストのバインドに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgInvalidBody})
		return "", "", false
	}

	mode, err := entity.ParseOutputMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgInvalidMode})
		return "", "", false
	}

	if err := prompt.ValidateCase(req.Case); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgEmptyCase})
		return "", "", false
	}
	return req.Case, mode, true
}

func toResponse(a *entity.Analysis) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		Mode:         string(a.Mode),
		Raw:          a.Raw,
		Result:       a.Object,
		ContractType: a.ContractType,
		Standard:     a.Standard,
		JournalEntry: a.JournalEntry,
		Explanation:  a.Explanation,
	}
}
