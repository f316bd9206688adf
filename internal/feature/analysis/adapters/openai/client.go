// Package openai はOpenAI Chat Completions APIを使用したModelGateway実装を提供します。
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はOpenAI APIで使用するモデルです。
	DefaultModel = goopenai.GPT4o
	// Temperature はサンプリング温度です。すべてのリクエストで固定です。
	Temperature float32 = 0.7
)

// ErrNoChoices はレスポンスに補完候補が含まれていない場合に返されます。
var ErrNoChoices = errors.New("openai returned no choices")

// Config はOpenAIクライアントの設定を保持します。
type Config struct {
	APIKey  string // 認証用APIキー
	BaseURL string // 空の場合はライブラリのデフォルト（https://api.openai.com/v1）
	Model   string // 空の場合はDefaultModel
}

// ChatGateway はOpenAI Chat Completions APIにプロンプトを送ります。
type ChatGateway struct {
	client *goopenai.Client
	model  string
}

// ChatGatewayがModelGatewayを実装していることをコンパイル時に検証します。
var _ usecase.ModelGateway = (*ChatGateway)(nil)

// NewChatGateway は指定された設定とHTTPクライアントでChatGatewayを生成します。
func NewChatGateway(cfg Config, httpClient *http.Client) *ChatGateway {
	oc := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		oc.HTTPClient = httpClient
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &ChatGateway{client: goopenai.NewClientWithConfig(oc), model: model}
}

// Complete はシステム・ユーザーの2メッセージを1回だけ送信し、最初の補完テキストを返します。
// 構造化モードではjson_objectの出力モードを指定します（スキーマ検証はサービス側のベストエフォート）。
func (g *ChatGateway) Complete(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: Temperature,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: p.System},
			{Role: goopenai.ChatMessageRoleUser, Content: p.User},
		},
	}
	if mode.IsStructured() {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
