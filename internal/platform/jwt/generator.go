// Package jwtmw はJSON API用のオペレータートークンの発行と検証を提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret は署名用シークレットが空の場合に返されます。
var ErrEmptySecret = errors.New("jwt secret is empty")

// Generator はオペレータートークンを発行するインターフェースです。
type Generator interface {
	// GenerateToken は指定したオペレーター名をsubに持つ署名済みトークンを生成します。
	GenerateToken(operator string) (string, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator はシークレットと有効期間を指定してGeneratorを生成します。
func NewGenerator(secret string, expiration time.Duration) (Generator, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &generator{secret: []byte(secret), expiration: expiration, now: time.Now}, nil
}

// GenerateToken は標準クレーム付きのHS256トークンを生成します。
func (g *generator) GenerateToken(operator string) (string, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   operator,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
