// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

import "fmt"

// OutputMode はモデルに要求する出力形式です。
// テンプレート・出力モード指定・レスポンス解析経路の選択に使われます。
type OutputMode string

const (
	// ModeStructured は4フィールドのJSONオブジェクトを要求します。
	ModeStructured OutputMode = "structured"
	// ModeText は番号付き4セクションのテキストを要求します。
	ModeText OutputMode = "text"
)

// DefaultMode は指定がない場合の出力形式です。
const DefaultMode = ModeStructured

// ParseOutputMode は文字列をOutputModeに変換します。空文字はDefaultModeになります。
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case "":
		return DefaultMode, nil
	case ModeStructured, ModeText:
		return OutputMode(s), nil
	default:
		return "", fmt.Errorf("unknown output mode %q", s)
	}
}

// IsStructured はJSON出力モードかどうかを返します。
func (m OutputMode) IsStructured() bool {
	return m == ModeStructured
}
