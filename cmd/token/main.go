// Command token はJSON API用のオペレータートークンを発行して標準出力に書き出します。
//
// 使い方:
//
//	JWT_SECRET=... go run ./cmd/token -operator ops -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"islamic_finance_backend/internal/config"
	jwtmw "islamic_finance_backend/internal/platform/jwt"
)

func main() {
	operator := flag.String("operator", "operator", "subject (sub) of the token")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadDotEnv(".env")
	cfg := config.LoadConfig()

	gen, err := jwtmw.NewGenerator(cfg.JWTSecret, *ttl)
	if err != nil {
		slog.Error("JWT_SECRET must be set to issue tokens", "error", err)
		os.Exit(1)
	}

	token, err := gen.GenerateToken(*operator)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
