// Package gcp registers the pagetext HTTP handler with the Google Cloud
// Functions Framework. Deploy with entry point ExtractContent.
//
// Configuration comes from PAGETEXT_USER_AGENT, PAGETEXT_TIMEOUT and
// PAGETEXT_RATE.
package gcp

import (
	"log/slog"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	pagehttp "github.com/fwojciec/pagetext/http"
	"github.com/fwojciec/pagetext/proxy"
)

// EntryPoint is the function name registered with the framework.
const EntryPoint = "ExtractContent"

func init() {
	functions.HTTP(EntryPoint, NewHandler().ServeHTTP)
}

// NewHandler builds the handler once per instance so warm invocations reuse
// the fetcher and its connection pool.
func NewHandler() *pagehttp.Handler {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return pagehttp.NewHandler(proxy.New(proxy.ConfigFromEnv(), logger), logger)
}
