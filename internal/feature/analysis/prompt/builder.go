// Package prompt はケース本文を固定の指示テンプレートに埋め込み、モデルに送るプロンプトを組み立てます。
package prompt

import (
	"fmt"
	"strings"

	"islamic_finance_backend/internal/feature/analysis/domain"
	"islamic_finance_backend/internal/feature/analysis/domain/entity"
)

// rouMethod は両テンプレートで共通のROU計算手順です。
// 数値はモデルに計算させ、ここでは手順の説明のみを渡します。
const rouMethod = `1. ROU = (purchase cost + installation + other pre-delivery costs) - expected purchase price (if ownership is transferred).
2. Total rentals = rental per year x lease years.
3. Deferred Ijarah Cost = Total rentals - ROU (if positive).`

// StructuredTemplate は4フィールドの生JSONオブジェクトを要求するテンプレートです。
const StructuredTemplate = `You are an expert Islamic finance accountant specializing in AAOIFI standards.
Your task is to analyze the case below and return a raw JSON object with:
- "contract_type": Islamic finance contract type
- "standard": AAOIFI FAS number
- "journal_entry": Accounting entry (journal lines with amounts)
- "explanation": Step-by-step reasoning including how the Right-of-Use (ROU) asset and Deferred Ijarah Cost are calculated
Use the following method for ROU:
` + rouMethod + `
IMPORTANT: Return ONLY the raw JSON object. Do not include triple backticks, markdown, or any extra text.
---
Case:
`

// TextTemplate は番号付き4セクションのテキストを要求するテンプレートです。
const TextTemplate = `You are an expert Islamic finance accountant specializing in AAOIFI standards.
Your task is to analyze the case below and provide the following information as text:

1. ISLAMIC CONTRACT TYPE:
   Identify the Islamic finance contract type in this case.

2. APPLICABLE AAOIFI STANDARD:
   State the applicable AAOIFI FAS number.

3. JOURNAL ENTRIES:
   Provide the accounting entries (journal lines with amounts) that should be recorded.

4. EXPLANATION:
   Give a step-by-step explanation including calculations for the Right-of-Use (ROU) asset
   and Deferred Ijarah Cost, using this method:
` + rouMethod + `

Case for analysis:
`

// DefaultCase は入力欄の初期値として表示するIjarahの例です。
const DefaultCase = "On 1 January 2019, Alpha Islamic Bank entered into an Ijarah MBT with Super Generators for a generator costing $450,000. Import tax was $12,000 and freight was $30,000. Lease term: 2 years with annual rental of $300,000. Purchase option: $3,000."

// ValidateCase はケース本文が空白以外の文字を含むことを確認します。
func ValidateCase(caseText string) error {
	if strings.TrimSpace(caseText) == "" {
		return domain.ErrEmptyCase
	}
	return nil
}

// Build は出力形式に応じたテンプレートでプロンプトを生成します。
// ケース本文はエスケープせずそのまま末尾に連結されます。
func Build(mode entity.OutputMode, caseText string) (entity.Prompt, error) {
	if err := ValidateCase(caseText); err != nil {
		return entity.Prompt{}, err
	}

	var tmpl string
	switch mode {
	case entity.ModeStructured:
		tmpl = StructuredTemplate
	case entity.ModeText:
		tmpl = TextTemplate
	default:
		return entity.Prompt{}, fmt.Errorf("unsupported output mode %q", mode)
	}

	return entity.Prompt{
		System: entity.SystemRole,
		User:   tmpl + caseText,
	}, nil
}
