// Package web はUIのHTMLテンプレートをバイナリに埋め込んで提供します。
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// IndexTemplate は分析ページのテンプレート名です。
const IndexTemplate = "index.tmpl"

// Templates は埋め込みテンプレートをパースして返します。パースに失敗した場合はpanicします。
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}
