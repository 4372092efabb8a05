package model

// Article is a markdown note discovered in a remote directory listing.
type Article struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	DownloadURL string `json:"download_url"`
	Path        string `json:"path"`
}
