package entity

import (
	"bytes"
	"encoding/json"
)

// 構造化モードで必須となるフィールド名です。
const (
	FieldContractType = "contract_type"
	FieldStandard     = "standard"
	FieldJournalEntry = "journal_entry"
	FieldExplanation  = "explanation"
)

// RequiredFields は構造化レスポンスに必須のフィールドを表示順で返します。
func RequiredFields() []string {
	return []string{FieldContractType, FieldStandard, FieldJournalEntry, FieldExplanation}
}

// Analysis は1回の分析結果を表します。永続化はされません。
type Analysis struct {
	Mode OutputMode
	Raw  string // モデルが返したテキストそのもの

	// 以下は構造化モードのみ設定されます。
	Object       map[string]json.RawMessage
	ContractType json.RawMessage
	Standard     json.RawMessage
	JournalEntry json.RawMessage
	Explanation  json.RawMessage
}

// PrettyObject はデコード済みオブジェクト全体をインデント付きJSONで返します。
func (a *Analysis) PrettyObject() string {
	if a.Object == nil {
		return ""
	}
	b, err := json.MarshalIndent(a.Object, "", "  ")
	if err != nil {
		return a.Raw
	}
	return string(b)
}

// DisplayText はフィールド値を表示用テキストに変換します。
// 文字列はそのまま、オブジェクトや配列はインデント付きJSONになります。
func DisplayText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, v, "", "  "); err != nil {
		return string(v)
	}
	return buf.String()
}
