package markdown

import (
	"strings"

	"golang.org/x/net/html"

	"personal-site/internal/domain/ports"
)

// TextExtractor strips markup from rendered HTML.
type TextExtractor struct{}

var _ ports.TextExtractor = TextExtractor{}

// Text returns the visible text of an HTML fragment with whitespace collapsed.
func (TextExtractor) Text(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if isBlock(node.Data) {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && isBlock(node.Data) {
		builder.WriteRune('\n')
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote", "tr":
		return true
	}
	return false
}
