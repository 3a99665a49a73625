// Package slog provides log/slog decorators for the extractcss interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/extractcss"
)

// Ensure LoggingExtractor implements extractcss.Extractor.
var _ extractcss.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   extractcss.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next extractcss.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the URL, load condition and outcome, and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, url string, opts extractcss.Options) (css string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", url,
			"wait_until", string(opts.LoadCondition()),
			"bytes", len(css),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url, opts)
}

// Close delegates to the wrapped extractor.
func (e *LoggingExtractor) Close() error {
	return e.next.Close()
}
