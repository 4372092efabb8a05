// Package frontmatter splits and decodes the YAML block that may open a
// markdown note.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"personal-site/internal/domain/model"
)

var blockPattern = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(?:(.*?)\r?\n)??---[ \t]*(?:\r?\n|\z)(.*)\z`)

// Split separates a leading front matter block from the body. When the
// markdown does not open with a delimited block, ok is false and body is the
// input unchanged.
func Split(markdown string) (front, body string, ok bool) {
	m := blockPattern.FindStringSubmatch(markdown)
	if m == nil {
		return "", markdown, false
	}
	return m[1], m[2], true
}

// Parse splits the markdown and decodes its front matter. On a YAML error the
// returned body is the raw markdown so callers can still render something.
func Parse(markdown string) (model.Metadata, string, error) {
	front, body, ok := Split(markdown)
	if !ok {
		return model.Metadata{}, markdown, nil
	}

	var meta model.Metadata
	if strings.TrimSpace(front) == "" {
		return meta, body, nil
	}
	if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
		return model.Metadata{}, markdown, fmt.Errorf("decode front matter: %w", err)
	}
	return meta, body, nil
}
