package dto

import "encoding/json"

// AnalysisResponse は分析成功時のレスポンスです。
// 構造化モードのフィールドはモデルが返したJSON値をそのまま載せます。
type AnalysisResponse struct {
	Mode         string                     `json:"mode"`
	Raw          string                     `json:"raw"`
	Result       map[string]json.RawMessage `json:"result,omitempty"`
	ContractType json.RawMessage            `json:"contract_type,omitempty"`
	Standard     json.RawMessage            `json:"standard,omitempty"`
	JournalEntry json.RawMessage            `json:"journal_entry,omitempty"`
	Explanation  json.RawMessage            `json:"explanation,omitempty"`
}

// ErrorResponse は失敗時のレスポンスです。
type ErrorResponse struct {
	Error     string `json:"error"`
	Hint      string `json:"hint,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
