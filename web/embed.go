// Package web holds the embedded templates, static assets and the
// introductory article.
package web

import "embed"

//go:embed templates/*.html
var TemplateFiles embed.FS

//go:embed static
var StaticFiles embed.FS

//go:embed content/intro.md
var IntroMarkdown string
