package pagetext

import "context"

// Service is the entry point every HTTP adapter calls.
type Service interface {
	// ExtractFromURL fetches url and extracts its main content.
	ExtractFromURL(ctx context.Context, url string) (*Result, error)
}
