// Package pagetext extracts the main readable content (title, body text and
// word count) from arbitrary web pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gin/, lambda/).
package pagetext

import (
	"net/url"
	"strings"
)

// DefaultUserAgent identifies outbound requests as a desktop browser so that
// sites which block unknown clients still serve their pages.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// NoTitle is the title reported for documents without a usable <title>.
const NoTitle = "No title found"

// ValidURL reports whether raw parses into a URL with both a scheme and a
// network location. It is a purely syntactic check.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// CountWords returns the number of whitespace-delimited tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
