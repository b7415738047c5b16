// Package proxy composes a Fetcher and an Extractor into the pagetext.Service
// that every HTTP adapter calls.
package proxy

import (
	"context"

	"github.com/fwojciec/pagetext"
)

// Ensure Service implements pagetext.Service at compile time.
var _ pagetext.Service = (*Service)(nil)

// Service fetches a page and extracts its main content. It keeps no
// per-request state and may be shared by concurrent requests.
type Service struct {
	Fetcher   pagetext.Fetcher
	Extractor pagetext.Extractor
}

// NewService creates a Service from its collaborators.
func NewService(fetcher pagetext.Fetcher, extractor pagetext.Extractor) *Service {
	return &Service{Fetcher: fetcher, Extractor: extractor}
}

// ExtractFromURL fetches url and extracts its main content.
// Invalid URLs fail with EINVALID before any network call.
func (s *Service) ExtractFromURL(ctx context.Context, url string) (*pagetext.Result, error) {
	if !pagetext.ValidURL(url) {
		return nil, pagetext.Errorf(pagetext.EINVALID, "Invalid URL: %s", url)
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return s.Extractor.Extract(html, url)
}
