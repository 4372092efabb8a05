package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"personal-site/internal/domain/ports"
)

// Renderer converts markdown to HTML with GitHub flavoured extensions and
// sanitises the result.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

var _ ports.MarkdownRenderer = (*Renderer)(nil)

// NewRenderer builds the default renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// raw HTML is allowed through goldmark and filtered by the policy below
			html.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "div", "span")
	policy.AllowAttrs("type", "checked", "disabled").OnElements("input")

	return &Renderer{md: md, policy: policy}
}

// Render converts markdown into sanitised HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}
