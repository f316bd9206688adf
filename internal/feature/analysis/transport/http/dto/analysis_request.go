// Package dto はanalysis APIのリクエスト・レスポンス構造体を定義します。
package dto

// AnalysisRequest は POST /v1/analyses のリクエストボディです。
// caseの空チェックはusecase側で行うため、ここではbindingタグを付けません。
type AnalysisRequest struct {
	Case string `json:"case"`
	Mode string `json:"mode"` // "structured"（デフォルト）または "text"
}
