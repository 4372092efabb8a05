package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"time"

	"personal-site/internal/domain/model"
)

// Channel describes the site publishing the feed.
type Channel struct {
	Title       string
	Link        string
	Description string
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category,omitempty"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
}

// WriteRSS encodes the documents as an RSS 2.0 feed. Item links point at
// channel.Link + "/notes/" + slug.
func WriteRSS(w io.Writer, channel Channel, docs []model.Document) error {
	items := make([]rssItem, 0, len(docs))
	for _, doc := range docs {
		link := fmt.Sprintf("%s/notes/%s", channel.Link, doc.Article.Slug)
		description := doc.Metadata.Description
		if description == "" {
			description = doc.Excerpt
		}
		items = append(items, rssItem{
			Title:       doc.Title,
			Link:        link,
			GUID:        link,
			PubDate:     formatDate(doc.Metadata.Date),
			Description: description,
			Categories:  doc.Metadata.Tags,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err := enc.Encode(rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       channel.Title,
			Link:        channel.Link,
			Description: channel.Description,
			Items:       items,
		},
	})
	if err != nil {
		return fmt.Errorf("encode rss: %w", err)
	}
	return nil
}

// ParseDate interprets a front matter date in one of the common layouts.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return t.Format(time.RFC1123Z)
}

// SortByDate orders documents newest first; undated documents keep their
// relative order at the end.
func SortByDate(docs []model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, okI := ParseDate(docs[i].Metadata.Date)
		tj, okJ := ParseDate(docs[j].Metadata.Date)
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}
