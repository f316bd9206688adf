// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/prompt"
)

// ModelGateway はホスト型LLMにプロンプトを送り、1件の補完テキストを受け取るインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ModelGateway interface {
	// Complete は1回だけリクエストを送り、返ってきたテキストをそのまま返します。
	Complete(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error)
}

// analysisUsecase はケース分析のビジネスロジックを提供します。
type analysisUsecase struct {
	gateway ModelGateway
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(g ModelGateway) *analysisUsecase {
	return &analysisUsecase{gateway: g}
}

// Analyze はケース本文を検証し、プロンプトを組み立ててモデルに送り、結果を解析します。
// 空のケースではリクエストを送らずErrEmptyCaseを返します。
func (u *analysisUsecase) Analyze(ctx context.Context, caseText string, mode entity.OutputMode) (*entity.Analysis, error) {
	p, err := prompt.Build(mode, caseText)
	if err != nil {
		return nil, err
	}

	raw, err := u.gateway.Complete(ctx, p, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGateway, err)
	}
	slog.DebugContext(ctx, "model response received", "mode", mode, "length", len(raw))

	if !mode.IsStructured() {
		return &entity.Analysis{Mode: mode, Raw: raw}, nil
	}
	return DecodeStructured(raw)
}
