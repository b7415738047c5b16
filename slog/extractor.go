package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagetext"
)

// Ensure LoggingExtractor implements pagetext.Extractor.
var _ pagetext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagetext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagetext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, url string) (result *pagetext.Result, err error) {
	defer func(begin time.Time) {
		wordCount := 0
		if result != nil {
			wordCount = result.WordCount
		}
		e.logger.Debug("extract",
			"url", url,
			"word_count", wordCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, url)
}
