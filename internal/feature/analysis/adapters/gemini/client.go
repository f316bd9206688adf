// Package gemini はGoogle Gemini APIを使用したModelGateway実装を提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// Temperature はサンプリング温度です。OpenAI側と同じ値に固定します。
	Temperature float32 = 0.7
)

// ErrEmptyResponse はテキストを含まないレスポンスの場合に返されます。
var ErrEmptyResponse = errors.New("gemini returned no text")

// Config はGeminiクライアントの設定を保持します。
type Config struct {
	APIKey  string
	BaseURL string // テストやプロキシ用。空の場合はライブラリのデフォルト
	Model   string
}

// GeminiGateway はGemini APIにプロンプトを送ります。
type GeminiGateway struct {
	client *genai.Client
	model  string
}

// GeminiGatewayがModelGatewayを実装していることをコンパイル時に検証します。
var _ usecase.ModelGateway = (*GeminiGateway)(nil)

// NewGeminiGateway はAPIキー認証でGeminiGatewayの新しいインスタンスを生成します。
func NewGeminiGateway(ctx context.Context, cfg Config, httpClient *http.Client) (*GeminiGateway, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGateway{client: client, model: model}, nil
}

// Complete はシステム指示とユーザーメッセージを1回だけ送信します。
// 構造化モードではレスポンスMIMEタイプにapplication/jsonを指定します。
func (g *GeminiGateway) Complete(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		Temperature:       genai.Ptr(Temperature),
	}
	if mode.IsStructured() {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.User), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
