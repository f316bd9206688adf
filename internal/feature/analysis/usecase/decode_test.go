package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/usecase"
)

func TestDecodeStructured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		wantMissing bool
		wantErr     bool
	}{
		{
			name: "success: all four fields",
			raw:  `{"contract_type":"Ijarah MBT","standard":"FAS 32","journal_entry":"Dr ROU 489,000","explanation":"steps","extra":1}`,
		},
		{
			name: "success: journal entry as array",
			raw:  `{"contract_type":"Ijarah","standard":"FAS 32","journal_entry":[{"account":"ROU","debit":489000}],"explanation":"x"}`,
		},
		{
			name:        "error: missing explanation",
			raw:         `{"contract_type":"Ijarah","standard":"FAS 32","journal_entry":"x"}`,
			wantErr:     true,
			wantMissing: true,
		},
		{
			name:        "error: null standard",
			raw:         `{"contract_type":"Ijarah","standard":null,"journal_entry":"x","explanation":"y"}`,
			wantErr:     true,
			wantMissing: true,
		},
		{
			name:    "error: markdown fenced output",
			raw:     "```json\n{\"contract_type\":\"Ijarah\"}\n```",
			wantErr: true,
		},
		{
			name:    "error: JSON array",
			raw:     `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "error: JSON null",
			raw:     `null`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := usecase.DecodeStructured(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
				assert.Equal(t, tt.wantMissing, errors.Is(err, domain.ErrMissingField))
				assert.Nil(t, a)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.ModeStructured, a.Mode)
			assert.Equal(t, tt.raw, a.Raw)
			assert.NotEmpty(t, a.ContractType)
			assert.NotEmpty(t, a.Standard)
			assert.NotEmpty(t, a.JournalEntry)
			assert.NotEmpty(t, a.Explanation)
		})
	}
}

func TestDecodeStructured_MissingFieldNamed(t *testing.T) {
	t.Parallel()

	_, err := usecase.DecodeStructured(`{"contract_type":"a","standard":"b","explanation":"d"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"journal_entry"`)
}
