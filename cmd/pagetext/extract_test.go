package main_test

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/pagetext"
	main "github.com/fwojciec/pagetext/cmd/pagetext"
	"github.com/fwojciec/pagetext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints results in argument order", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			ExtractFromURLFn: func(_ context.Context, url string) (*pagetext.Result, error) {
				return &pagetext.Result{Title: url, URL: url}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: service}

		cmd := &main.ExtractCmd{
			URLs:        []string{"https://a.example", "https://b.example", "https://c.example"},
			Concurrency: 3,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "https://a.example")
		assert.Contains(t, lines[1], "https://b.example")
		assert.Contains(t, lines[2], "https://c.example")
	})

	t.Run("reports failures and returns error", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			ExtractFromURLFn: func(_ context.Context, url string) (*pagetext.Result, error) {
				if url == "bad" {
					return nil, pagetext.Errorf(pagetext.EINVALID, "Invalid URL: bad")
				}
				return &pagetext.Result{URL: url}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: service}

		err := (&main.ExtractCmd{URLs: []string{"https://ok.example", "bad"}, Concurrency: 2}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)
		assert.JSONEq(t, `{"error":"Invalid URL: bad"}`, lines[1])
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		service := &mock.Service{
			ExtractFromURLFn: func(_ context.Context, url string) (*pagetext.Result, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				defer inFlight.Add(-1)
				return &pagetext.Result{URL: url}, nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Service: service}

		urls := make([]string, 20)
		for i := range urls {
			urls[i] = "https://example.com"
		}
		err := (&main.ExtractCmd{URLs: urls, Concurrency: 2}).Run(deps)

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})
}
