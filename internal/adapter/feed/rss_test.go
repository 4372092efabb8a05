package feed

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-site/internal/domain/model"
)

func TestWriteRSS(t *testing.T) {
	docs := []model.Document{
		{
			Article:  model.Article{Slug: "hello"},
			Title:    "Hello & Welcome",
			Metadata: model.Metadata{Date: "2024-03-01", Tags: model.Tags{"go", "web"}},
			Excerpt:  "First words",
		},
		{
			Article:  model.Article{Slug: "undated"},
			Title:    "Undated",
			Metadata: model.Metadata{Description: "Explicit description", Date: "sometime"},
		},
	}

	var buf bytes.Buffer
	err := WriteRSS(&buf, Channel{Title: "Notes", Link: "https://me.dev", Description: "desc"}, docs)
	require.NoError(t, err)

	var decoded struct {
		Channel struct {
			Title string `xml:"title"`
			Items []struct {
				Title       string   `xml:"title"`
				Link        string   `xml:"link"`
				PubDate     string   `xml:"pubDate"`
				Description string   `xml:"description"`
				Categories  []string `xml:"category"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Notes", decoded.Channel.Title)
	require.Len(t, decoded.Channel.Items, 2)

	first := decoded.Channel.Items[0]
	assert.Equal(t, "Hello & Welcome", first.Title)
	assert.Equal(t, "https://me.dev/notes/hello", first.Link)
	assert.Equal(t, "Fri, 01 Mar 2024 00:00:00 +0000", first.PubDate)
	assert.Equal(t, "First words", first.Description)
	assert.Equal(t, []string{"go", "web"}, first.Categories)

	second := decoded.Channel.Items[1]
	assert.Empty(t, second.PubDate)
	assert.Equal(t, "Explicit description", second.Description)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2023-07-04T10:00:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 7, 4, 10, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("March 5, 2022")
	require.True(t, ok)
	assert.Equal(t, 2022, got.Year())

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestSortByDate(t *testing.T) {
	docs := []model.Document{
		{Title: "undated-1"},
		{Title: "old", Metadata: model.Metadata{Date: "2020-01-01"}},
		{Title: "undated-2", Metadata: model.Metadata{Date: "soon"}},
		{Title: "new", Metadata: model.Metadata{Date: "2024-05-01"}},
	}

	SortByDate(docs)

	titles := make([]string, 0, len(docs))
	for _, d := range docs {
		titles = append(titles, d.Title)
	}
	assert.Equal(t, []string{"new", "old", "undated-1", "undated-2"}, titles)
}
