package entity

// SystemRole はすべてのリクエストで送るシステムメッセージです。
const SystemRole = "You are an expert Islamic finance accountant."

// Prompt はモデルに送る2メッセージ構成の指示です。
type Prompt struct {
	System string // システムロールのメッセージ
	User   string // 定型文とケース本文を連結したユーザーメッセージ
}
