// Package render turns resolved document trees into HTML pages. The markup
// mirrors the tabbed-display contract consumed by the docs front end: a
// container tagged with the snippet key, a heading list, and one snippet item
// per resolved language.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mvp-joe/snipdocs/internal/doctree"
	"github.com/mvp-joe/snipdocs/internal/snippet"
)

// Renderer emits HTML for resolved documents.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderDocument renders one resolved document as a full HTML page.
func (r *Renderer) RenderDocument(doc *doctree.Document) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(doc.Name))
	b.WriteString("</head>\n<body>\n")

	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case *doctree.Text:
			r.writeText(&b, n)
		case *doctree.Display:
			r.writeDisplay(&b, n)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeText renders a literal text run as paragraphs split on blank lines.
func (r *Renderer) writeText(b *strings.Builder, text *doctree.Text) {
	var para []string

	flush := func() {
		if len(para) > 0 {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(strings.Join(para, "\n")))
			para = nil
		}
	}

	for _, line := range text.Lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()
}

// writeDisplay renders one resolved placeholder: the headings list first,
// then the snippet items, both tagged with their language ids.
func (r *Renderer) writeDisplay(b *strings.Builder, display *doctree.Display) {
	fmt.Fprintf(b, "<div class=\"snippets-container\" data-key=\"%s\">\n",
		html.EscapeString(display.Key))

	b.WriteString("<ul class=\"headings\">\n")
	for _, sn := range display.Snippets {
		fmt.Fprintf(b, "<li><a class=\"heading\" href=\"#\" data-language=\"%s\">%s</a></li>\n",
			html.EscapeString(sn.Language.Key),
			html.EscapeString(sn.Language.DisplayName()))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<ul class=\"snippets\">\n")
	for _, sn := range display.Snippets {
		r.writeSnippet(b, sn)
	}
	b.WriteString("</ul>\n")

	b.WriteString("</div>\n")
}

func (r *Renderer) writeSnippet(b *strings.Builder, sn *snippet.Snippet) {
	fmt.Fprintf(b, "<li class=\"snippet\" data-language=\"%s\">\n",
		html.EscapeString(sn.Language.Key))

	fmt.Fprintf(b, "<pre><code class=\"highlight-%s\">%s</code></pre>\n",
		html.EscapeString(sn.Language.HighlightScheme()),
		html.EscapeString(strings.Join(sn.Body, "\n")))

	if url := sn.SourceURL(); url != "" {
		fmt.Fprintf(b, "<a class=\"snippet-source\" href=\"%s\">view source</a>\n",
			html.EscapeString(url))
	}

	b.WriteString("</li>\n")
}
