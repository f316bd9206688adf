package handler

import "islamic_finance_backend/internal/feature/analysis/domain/entity"

// 表示切り替えの値です。
const (
	ViewJSON      = "json"
	ViewFormatted = "formatted"
)

// PageData は分析ページのテンプレートに渡す値です。
type PageData struct {
	Case      string
	Mode      string
	View      string
	Warning   string
	Error     string
	Hint      string
	RequestID string
	Result    *ResultView
}

// ResultView は分析結果の表示用モデルです。
type ResultView struct {
	Structured bool
	Formatted  bool
	Raw        string
	PrettyJSON string

	ContractType string
	Standard     string
	JournalEntry string
	Explanation  string
}

func newResultView(a *entity.Analysis, view string) *ResultView {
	if !a.Mode.IsStructured() {
		return &ResultView{Raw: a.Raw}
	}
	return &ResultView{
		Structured:   true,
		Formatted:    view == ViewFormatted,
		Raw:          a.Raw,
		PrettyJSON:   a.PrettyObject(),
		ContractType: entity.DisplayText(a.ContractType),
		Standard:     entity.DisplayText(a.Standard),
		JournalEntry: entity.DisplayText(a.JournalEntry),
		Explanation:  entity.DisplayText(a.Explanation),
	}
}
