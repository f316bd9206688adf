// Package domain はanalysisフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrEmptyCase はケース本文が空（空白のみを含む）の場合に返されます。
	ErrEmptyCase = errors.New("case text is empty")
	// ErrGateway はモデルAPI呼び出しの失敗を表します。
	ErrGateway = errors.New("model gateway request failed")
	// ErrMalformedResponse はモデルの出力が期待した形式でない場合に返されます。
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrMissingField は構造化レスポンスに必須フィールドがない場合に返されます。
	ErrMissingField = errors.New("required field missing")
)
