package ports

// MarkdownRenderer turns markdown into sanitised HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// TextExtractor reduces rendered HTML to plain text.
type TextExtractor interface {
	Text(html string) string
}
