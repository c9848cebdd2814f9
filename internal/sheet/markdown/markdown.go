// Package markdown renders the markdown snippets embedded in sheet copy
// (update notes, rules text) to HTML for the template.
package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Render converts markdown source to HTML.
func Render(src string) string {
	extensions := parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(src))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return strings.TrimSpace(string(markdown.Render(doc, renderer)))
}
