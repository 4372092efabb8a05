package model

// Document is a fully rendered note ready for display.
type Document struct {
	Article  Article  `json:"article"`
	Title    string   `json:"title"`
	Metadata Metadata `json:"metadata"`
	HTML     string   `json:"html"`
	Excerpt  string   `json:"excerpt,omitempty"`
}
