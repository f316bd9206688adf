package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
)

var jsonNull = []byte("null")

// DecodeStructured はモデルの出力をJSONオブジェクトとしてデコードし、必須4フィールドを取り出します。
// 必須フィールドの欠落やnullは空欄扱いにせず、ErrMalformedResponseとして返します。
func DecodeStructured(raw string) (*entity.Analysis, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", domain.ErrMalformedResponse)
	}

	a := &entity.Analysis{
		Mode:   entity.ModeStructured,
		Raw:    raw,
		Object: obj,
	}
	targets := map[string]*json.RawMessage{
		entity.FieldContractType: &a.ContractType,
		entity.FieldStandard:     &a.Standard,
		entity.FieldJournalEntry: &a.JournalEntry,
		entity.FieldExplanation:  &a.Explanation,
	}
	for _, name := range entity.RequiredFields() {
		v, ok := obj[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return nil, fmt.Errorf("%w: %w: %q", domain.ErrMalformedResponse, domain.ErrMissingField, name)
		}
		*targets[name] = v
	}
	return a, nil
}
