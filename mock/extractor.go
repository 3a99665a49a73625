package mock

import (
	"context"

	"github.com/fwojciec/extractcss"
)

var _ extractcss.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of extractcss.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string, opts extractcss.Options) (string, error)
	CloseFn   func() error
}

func (e *Extractor) Extract(ctx context.Context, url string, opts extractcss.Options) (string, error) {
	return e.ExtractFn(ctx, url, opts)
}

func (e *Extractor) Close() error {
	return e.CloseFn()
}
