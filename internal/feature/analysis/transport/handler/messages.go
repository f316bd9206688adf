package handler

// オペレーターに表示する固定メッセージです。原因の詳細はログにのみ出力します。
const (
	MsgEmptyCase    = "Please enter a case to analyze."
	MsgInvalidMode  = "Unknown output mode. Use \"structured\" or \"text\"."
	MsgInvalidBody  = "Invalid request body."
	MsgGenericError = "An error occurred during analysis."
	MsgHint         = "Check your API key configuration and ensure all dependencies are installed."
)

// DownloadFileName はテキスト結果ダウンロード時の固定ファイル名です。
const DownloadFileName = "islamic_finance_analysis.txt"
