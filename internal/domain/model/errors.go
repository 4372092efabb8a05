package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a slug does not match any listed article.
var ErrNotFound = errors.New("article not found")

// FetchError describes a failed request to the remote content API.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UserMessage is the short text shown to visitors when a fetch fails.
func (e *FetchError) UserMessage() string {
	if e.Status != 0 {
		return fmt.Sprintf("Failed to load article (HTTP %d)", e.Status)
	}
	return "Failed to load article"
}

// UserMessage maps any error onto a visitor-facing string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	if errors.Is(err, ErrNotFound) {
		return "Article not found"
	}
	return "Failed to load article"
}
