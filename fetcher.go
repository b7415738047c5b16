package pagetext

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET for url and returns the body decoded as text.
	// Returns EINVALID if url is not a valid URL and EFETCH if the request
	// fails, times out or ends with a non-success status.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
