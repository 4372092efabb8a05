package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-site/internal/domain/model"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFront string
		wantBody  string
		wantOK    bool
	}{
		{
			name:      "standard block",
			input:     "---\ntitle: Hi\n---\n# Body\n",
			wantFront: "title: Hi",
			wantBody:  "# Body\n",
			wantOK:    true,
		},
		{
			name:      "crlf line endings",
			input:     "---\r\ntitle: Hi\r\n---\r\nbody",
			wantFront: "title: Hi",
			wantBody:  "body",
			wantOK:    true,
		},
		{
			name:      "block without body",
			input:     "---\ntitle: Hi\n---",
			wantFront: "title: Hi",
			wantBody:  "",
			wantOK:    true,
		},
		{
			name:     "empty block",
			input:    "---\n---\nbody\n",
			wantBody: "body\n",
			wantOK:   true,
		},
		{
			name:     "empty block with horizontal rule in body",
			input:    "---\n---\nbody\n---\nmore",
			wantBody: "body\n---\nmore",
			wantOK:   true,
		},
		{
			name:     "no front matter",
			input:    "# Just markdown\n---\nnot: yaml\n---\n",
			wantBody: "# Just markdown\n---\nnot: yaml\n---\n",
		},
		{
			name:     "unterminated block",
			input:    "---\ntitle: Hi\n# Body",
			wantBody: "---\ntitle: Hi\n# Body",
		},
		{
			name:      "horizontal rule in body stays in body",
			input:     "---\na: 1\n---\nintro\n\n---\n\nmore",
			wantFront: "a: 1",
			wantBody:  "intro\n\n---\n\nmore",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, body, ok := Split(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantFront, front)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParse_AllFields(t *testing.T) {
	md := `---
title: Notes on Go
date: 2024-03-01
description: Short tour
lang: en
tags: [go, tooling]
---
# Heading
`
	meta, body, err := Parse(md)
	require.NoError(t, err)

	assert.Equal(t, model.Metadata{
		Title:       "Notes on Go",
		Date:        "2024-03-01",
		Description: "Short tour",
		Lang:        "en",
		Tags:        model.Tags{"go", "tooling"},
	}, meta)
	assert.Equal(t, "# Heading\n", body)
}

func TestParse_ScalarTags(t *testing.T) {
	meta, _, err := Parse("---\ntags: go, web ,  \n---\nbody")
	require.NoError(t, err)
	assert.Equal(t, model.Tags{"go", "web"}, meta.Tags)
}

func TestParse_InvalidYAMLFallsBackToRaw(t *testing.T) {
	md := "---\ntitle: [unclosed\n---\nbody"

	meta, body, err := Parse(md)

	require.Error(t, err)
	assert.True(t, meta.IsZero())
	assert.Equal(t, md, body)
}

func TestParse_NoFrontMatter(t *testing.T) {
	meta, body, err := Parse("plain")
	require.NoError(t, err)
	assert.True(t, meta.IsZero())
	assert.Equal(t, "plain", body)
}

func TestParse_EmptyBlock(t *testing.T) {
	for _, input := range []string{"---\n\n---\nbody", "---\n---\nbody", "---\r\n---\r\nbody"} {
		meta, body, err := Parse(input)
		require.NoError(t, err)
		assert.True(t, meta.IsZero())
		assert.Equal(t, "body", body, "input %q", input)
	}
}
