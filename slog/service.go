package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagetext"
)

// Ensure LoggingService implements pagetext.Service.
var _ pagetext.Service = (*LoggingService)(nil)

// LoggingService wraps a Service, logging every extraction and reporting
// failures at error level.
type LoggingService struct {
	next   pagetext.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next pagetext.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// ExtractFromURL delegates to the wrapped service and logs the operation.
func (s *LoggingService) ExtractFromURL(ctx context.Context, url string) (result *pagetext.Result, err error) {
	s.logger.Info("extracting content", "url", url)
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("extraction failed",
				"url", url,
				"code", pagetext.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("extraction complete",
			"url", url,
			"word_count", result.WordCount,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ExtractFromURL(ctx, url)
}
