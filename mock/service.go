package mock

import (
	"context"

	"github.com/fwojciec/pagetext"
)

var _ pagetext.Service = (*Service)(nil)

// Service is a mock implementation of pagetext.Service.
type Service struct {
	ExtractFromURLFn func(ctx context.Context, url string) (*pagetext.Result, error)
}

func (s *Service) ExtractFromURL(ctx context.Context, url string) (*pagetext.Result, error) {
	return s.ExtractFromURLFn(ctx, url)
}
