package mock

import "github.com/fwojciec/pagetext"

var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetext.Extractor.
type Extractor struct {
	ExtractFn func(html, url string) (*pagetext.Result, error)
}

func (e *Extractor) Extract(html, url string) (*pagetext.Result, error) {
	return e.ExtractFn(html, url)
}
