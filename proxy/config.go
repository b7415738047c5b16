package proxy

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/goquery"
	pagehttp "github.com/fwojciec/pagetext/http"
	"github.com/fwojciec/pagetext/rate"
	pageslog "github.com/fwojciec/pagetext/slog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvUserAgent = "PAGETEXT_USER_AGENT"
	EnvTimeout   = "PAGETEXT_TIMEOUT"
	EnvRate      = "PAGETEXT_RATE"
)

// Config is the process-wide configuration shared read-only by all requests.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// Rate limits outbound requests per domain per second. Zero disables it.
	Rate float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		UserAgent: pagetext.DefaultUserAgent,
		Timeout:   pagehttp.DefaultFetchTimeout,
	}
}

// ConfigFromEnv overlays DefaultConfig with values from the environment.
// Unparseable values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, ok := os.LookupEnv(EnvUserAgent); ok && v != "" {
		cfg.UserAgent = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v, ok := os.LookupEnv(EnvRate); ok && v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rate = r
		}
	}
	return cfg
}

// New wires the HTTP fetcher and goquery extractor into a logged Service.
func New(cfg Config, logger *slog.Logger) pagetext.Service {
	opts := []pagehttp.Option{
		pagehttp.WithTimeout(cfg.Timeout),
		pagehttp.WithUserAgent(cfg.UserAgent),
	}
	if cfg.Rate > 0 {
		opts = append(opts, pagehttp.WithDomainLimiter(rate.NewDomainLimiter(cfg.Rate)))
	}

	fetcher := pageslog.NewLoggingFetcher(pagehttp.NewFetcher(opts...), logger)
	extractor := pageslog.NewLoggingExtractor(goquery.NewExtractor(), logger)

	return pageslog.NewLoggingService(NewService(fetcher, extractor), logger)
}
