package pagetext

// Extractor locates the main readable content of an HTML page.
type Extractor interface {
	// Extract parses html and returns its title, paragraph text and word count.
	// The url is echoed into the result unchanged.
	// Returns EEXTRACT if html cannot be treated as text.
	Extract(html, url string) (*Result, error)
}
