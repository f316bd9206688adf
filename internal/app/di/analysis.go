// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"

	"islamic_finance_backend/internal/config"
	"islamic_finance_backend/internal/feature/analysis/adapters/gemini"
	"islamic_finance_backend/internal/feature/analysis/adapters/openai"
	"islamic_finance_backend/internal/feature/analysis/usecase"
	infrahttp "islamic_finance_backend/internal/platform/http"
)

// NewModelGateway creates the ModelGateway for the configured provider.
// Both providers share one HTTP client built from LLM_TIMEOUT.
func NewModelGateway(ctx context.Context, cfg config.Config) (usecase.ModelGateway, error) {
	httpClient := infrahttp.NewHTTPClient(cfg.LLMTimeout)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewChatGateway(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
		}, httpClient), nil
	case config.ProviderGemini:
		return gemini.NewGeminiGateway(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey}, httpClient)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
