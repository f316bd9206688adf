// Package config は環境変数（と任意の.envファイル）からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 対応するLLMプロバイダーです。
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	// ErrMissingAPIKey は選択したプロバイダーのAPIキーが未設定の場合に返されます。
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrPlaceholderAPIKey はAPIキーがサンプルのままの場合に返されます。
	ErrPlaceholderAPIKey = errors.New("API key is still the placeholder value")
	// ErrUnknownProvider はLLM_PROVIDERが対応外の値の場合に返されます。
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

// placeholderKeys は.envのサンプルに書かれている値です。これらは未設定とみなします。
var placeholderKeys = map[string]struct{}{
	"your_openai_api_key_here": {},
	"your_gemini_api_key_here": {},
	"your_key_here":            {},
}

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Port     string
	LogLevel string

	Provider      string        // "openai" または "gemini"
	OpenAIAPIKey  string        // OPENAI_API_KEY
	OpenAIBaseURL string        // OPENAI_BASE_URL（任意）
	GeminiAPIKey  string        // GEMINI_API_KEY
	LLMTimeout    time.Duration // モデルAPIへのリクエスト全体のタイムアウト

	RedisHost     string
	RedisPort     string
	RedisPassword string

	RateLimitPerMinute int      // 0で無効
	JWTSecret          string   // 空の場合はJSON APIを認証なしで公開
	CORSAllowedOrigins []string // 空の場合はCORSを設定しない
	TrustedProxies     []string // 空の場合はX-Forwarded-Forを信頼せず接続元IPを使う
}

// LoadDotEnv は.envファイルがあれば読み込みます。既存の環境変数は上書きしません。
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Info(".env not found; using system environment variables", "path", path)
	}
}

// LoadConfig はプロセスの環境変数から設定を読み込みます。
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	return Config{
		Port:               get("PORT", "8080"),
		LogLevel:           get("LOG_LEVEL", "info"),
		Provider:           strings.ToLower(get("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:       get("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      get("OPENAI_BASE_URL", ""),
		GeminiAPIKey:       get("GEMINI_API_KEY", ""),
		LLMTimeout:         parseDuration(get("LLM_TIMEOUT", ""), 120*time.Second),
		RedisHost:          get("REDIS_HOST", ""),
		RedisPort:          get("REDIS_PORT", "6379"),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		RateLimitPerMinute: parseInt(get("RATE_LIMIT_PER_MINUTE", ""), 30),
		JWTSecret:          getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "")),
		TrustedProxies:     splitList(get("TRUSTED_PROXIES", "")),
	}
}

// Validate は起動前に必須設定を確認します。エラーの場合、アプリケーションは起動しません。
func (c Config) Validate() error {
	var key, name string
	switch c.Provider {
	case ProviderOpenAI:
		key, name = c.OpenAIAPIKey, "OPENAI_API_KEY"
	case ProviderGemini:
		key, name = c.GeminiAPIKey, "GEMINI_API_KEY"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}

	if key == "" {
		return fmt.Errorf("%w: set %s in the environment or the .env file", ErrMissingAPIKey, name)
	}
	if _, ok := placeholderKeys[key]; ok {
		return fmt.Errorf("%w: replace %s in the .env file with your real key", ErrPlaceholderAPIKey, name)
	}
	return nil
}

// RedisAddr はRedisの接続先を返します。REDIS_HOSTが未設定の場合は空文字です。
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration; using default", "value", s, "default", def)
		return def
	}
	return d
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		slog.Warn("invalid integer; using default", "value", s, "default", def)
		return def
	}
	return n
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
