// Package http provides the net/http side of pagetext: a Fetcher that
// retrieves pages over HTTP(S) and a Handler that serves extraction requests
// for serverless runtimes speaking plain net/http.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pagetext"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagetext.Fetcher at compile time.
var _ pagetext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single HTTP GET.
// It does not retry, cache or execute JavaScript. Its configuration is fixed
// at construction, so one Fetcher may serve concurrent requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   pagetext.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to pagetext.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. Redirects follow the client's
// policy.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithDomainLimiter throttles requests per host before they are sent.
func WithDomainLimiter(l pagetext.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		timeout:   DefaultFetchTimeout,
		userAgent: pagetext.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the HTML content from the given URL using the configured
// timeout.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	return f.FetchWithTimeout(ctx, rawURL, f.timeout)
}

// FetchWithTimeout retrieves the HTML content from the given URL, aborting
// after timeout. A non-positive timeout disables the limit.
//
// The URL is validated before any network activity. Responses with a final
// status outside 2xx/3xx are failures. The body is decoded to UTF-8 according
// to its declared or sniffed charset.
func (f *Fetcher) FetchWithTimeout(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	if !pagetext.ValidURL(rawURL) {
		return "", pagetext.Errorf(pagetext.EINVALID, "Invalid URL: %s", rawURL)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if f.limiter != nil {
		u, _ := url.Parse(rawURL)
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", pagetext.Errorf(pagetext.EFETCH, "rate limit wait for %s: %v", rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EFETCH, "%v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EFETCH, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return "", pagetext.Errorf(pagetext.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", pagetext.Errorf(pagetext.EFETCH, "decode body of %s: %v", rawURL, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EFETCH, "read body of %s: %v", rawURL, err)
	}

	return string(body), nil
}
