package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
	"islamic_finance_backend/internal/feature/analysis/prompt"
	"islamic_finance_backend/internal/feature/analysis/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockModelGateway はModelGatewayインターフェースのモック実装です。
type mockModelGateway struct {
	CompleteFunc  func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error)
	CompleteCalls int
	LastPrompt    entity.Prompt
	LastMode      entity.OutputMode
}

func (m *mockModelGateway) Complete(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
	m.CompleteCalls++
	m.LastPrompt = p
	m.LastMode = mode
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, p, mode)
	}
	return "", errors.New("CompleteFunc is not implemented")
}

const fourFields = `{"contract_type":"Ijarah Muntahia Bittamleek","standard":"AAOIFI FAS 32","journal_entry":"Dr ROU asset 489,000\nDr Deferred Ijarah Cost 111,000\nCr Ijarah liability 600,000","explanation":"ROU = 450,000 + 12,000 + 30,000 - 3,000 = 489,000"}`

func TestAnalysisUsecase_Analyze(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		caseText      string
		mode          entity.OutputMode
		mockFunc      func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error)
		expectedCalls int
		expectedErr   error
	}{
		{
			name:     "success: structured",
			caseText: prompt.DefaultCase,
			mode:     entity.ModeStructured,
			mockFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
				return fourFields, nil
			},
			expectedCalls: 1,
		},
		{
			name:     "success: text",
			caseText: prompt.DefaultCase,
			mode:     entity.ModeText,
			mockFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
				return "1. ISLAMIC CONTRACT TYPE: Ijarah", nil
			},
			expectedCalls: 1,
		},
		{
			name:          "error: empty case issues no request",
			caseText:      "   ",
			mode:          entity.ModeStructured,
			expectedCalls: 0,
			expectedErr:   domain.ErrEmptyCase,
		},
		{
			name:     "error: gateway failure",
			caseText: "case",
			mode:     entity.ModeText,
			mockFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
				return "", ErrAPI
			},
			expectedCalls: 1,
			expectedErr:   domain.ErrGateway,
		},
		{
			name:     "error: structured response missing field",
			caseText: "case",
			mode:     entity.ModeStructured,
			mockFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
				return `{"contract_type":"Ijarah","standard":"FAS 32","journal_entry":"x"}`, nil
			},
			expectedCalls: 1,
			expectedErr:   domain.ErrMissingField,
		},
		{
			name:     "error: structured response not JSON",
			caseText: "case",
			mode:     entity.ModeStructured,
			mockFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
				return "I cannot help with that.", nil
			},
			expectedCalls: 1,
			expectedErr:   domain.ErrMalformedResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &mockModelGateway{CompleteFunc: tc.mockFunc}
			uc := usecase.NewAnalysisUsecase(gw)

			result, err := uc.Analyze(ctx, tc.caseText, tc.mode)

			assert.Equal(t, tc.expectedCalls, gw.CompleteCalls)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.mode, result.Mode)
			assert.Equal(t, tc.mode, gw.LastMode)
			assert.Contains(t, gw.LastPrompt.User, tc.caseText)
		})
	}
}

func TestAnalysisUsecase_Analyze_IjarahEndToEnd(t *testing.T) {
	gw := &mockModelGateway{
		CompleteFunc: func(ctx context.Context, p entity.Prompt, mode entity.OutputMode) (string, error) {
			return fourFields, nil
		},
	}
	uc := usecase.NewAnalysisUsecase(gw)

	result, err := uc.Analyze(context.Background(), prompt.DefaultCase, entity.ModeStructured)
	require.NoError(t, err)

	require.Equal(t, 1, gw.CompleteCalls)
	for _, figure := range []string{"$450,000", "$12,000", "$30,000", "2 years", "$300,000", "$3,000"} {
		assert.Contains(t, gw.LastPrompt.User, figure)
	}

	assert.Equal(t, fourFields, result.Raw)
	assert.Equal(t, "Ijarah Muntahia Bittamleek", entity.DisplayText(result.ContractType))
	assert.Equal(t, "AAOIFI FAS 32", entity.DisplayText(result.Standard))
	assert.Equal(t, "Dr ROU asset 489,000\nDr Deferred Ijarah Cost 111,000\nCr Ijarah liability 600,000", entity.DisplayText(result.JournalEntry))
	assert.Equal(t, "ROU = 450,000 + 12,000 + 30,000 - 3,000 = 489,000", entity.DisplayText(result.Explanation))
}
