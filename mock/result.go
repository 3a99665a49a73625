package mock

import (
	"context"

	"github.com/fwojciec/extractcss"
)

// Compile-time interface verification.
var (
	_ extractcss.ResultWriter  = (*ResultWriter)(nil)
	_ extractcss.DomainLimiter = (*DomainLimiter)(nil)
)

// ResultWriter is a mock implementation of extractcss.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, r *extractcss.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, r *extractcss.Result) error {
	return w.WriteResultFn(ctx, r)
}

// DomainLimiter is a mock implementation of extractcss.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
