package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pagetext"
	pagehttp "github.com/fwojciec/pagetext/http"
	"github.com/fwojciec/pagetext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		html, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends default user agent", func(t *testing.T) {
		t.Parallel()

		var got atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Store(r.UserAgent())
		}))
		defer server.Close()

		_, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, pagetext.DefaultUserAgent, got.Load())
	})

	t.Run("sends custom user agent", func(t *testing.T) {
		t.Parallel()

		var got atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Store(r.UserAgent())
		}))
		defer server.Close()

		fetcher := pagehttp.NewFetcher(pagehttp.WithUserAgent("pagetext-test/1.0"))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "pagetext-test/1.0", got.Load())
	})

	t.Run("rejects invalid URL without network call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, assert.AnError
		})}

		fetcher := pagehttp.NewFetcher(pagehttp.WithClient(client))
		for _, raw := range []string{"", "example.com", "/path", "https://", "not a url"} {
			_, err := fetcher.Fetch(context.Background(), raw)
			require.Error(t, err)
			assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err), raw)
		}
		assert.Zero(t, calls.Load())
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := pagehttp.NewFetcher(pagehttp.WithTimeout(10 * time.Millisecond))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
	})

	t.Run("per-call timeout overrides default", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		_, err := pagehttp.NewFetcher().FetchWithTimeout(context.Background(), server.URL, 10*time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pagehttp.NewFetcher().Fetch(ctx, server.URL)

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := pagehttp.NewFetcher(pagehttp.WithTimeout(100 * time.Millisecond))
		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
	})

	t.Run("returns error for 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("<p>404 Not Found</p>"))
		}))
		defer server.Close()

		_, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
		assert.Contains(t, pagetext.ErrorMessage(err), "HTTP 404")
	})

	t.Run("returns error for 500", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Contains(t, pagetext.ErrorMessage(err), "HTTP 500")
	})

	t.Run("accepts non-200 success statuses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("<p>ok</p>"))
		}))
		defer server.Close()

		html, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", html)
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<p>moved</p>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		html, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL+"/old")

		require.NoError(t, err)
		assert.Equal(t, "<p>moved</p>", html)
	})

	t.Run("decodes declared charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>caf\xe9</p>"))
		}))
		defer server.Close()

		html, err := pagehttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<p>café</p>", html)
	})

	t.Run("waits on domain limiter with request host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		var domain string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, d string) error {
				domain = d
				return nil
			},
		}

		fetcher := pagehttp.NewFetcher(pagehttp.WithDomainLimiter(limiter))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, server.Listener.Addr().String(), domain)
	})

	t.Run("limiter failure is a fetch failure", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(context.Context, string) error {
				return context.DeadlineExceeded
			},
		}

		fetcher := pagehttp.NewFetcher(pagehttp.WithDomainLimiter(limiter))
		_, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pagetext.EFETCH, pagetext.ErrorCode(err))
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Compile-time verification that Fetcher implements pagetext.Fetcher
var _ pagetext.Fetcher = (*pagehttp.Fetcher)(nil)
