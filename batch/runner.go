// Package batch extracts CSS from many URLs concurrently.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/extractcss"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages extracted at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 3

// Runner extracts CSS from a list of URLs.
type Runner struct {
	Extractor   extractcss.Extractor
	RateLimiter extractcss.DomainLimiter
	Options     extractcss.Options
	Concurrency int
}

// Run extracts every URL and returns one result per URL in input order.
// A failing URL does not stop the others; its error is stored on its
// result. The progress callback, if provided, is called once per URL from
// a single goroutine.
func (r *Runner) Run(ctx context.Context, urls []string, progress extractcss.ProgressFunc) []*extractcss.Result {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		result   *extractcss.Result
	}
	resultCh := make(chan indexed, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- indexed{position: i, result: r.extract(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	total := len(urls)
	results := make([]*extractcss.Result, total)
	for res := range resultCh {
		results[res.position] = res.result
		if progress != nil {
			progress(extractcss.Progress{
				URL:       res.result.URL,
				Completed: int(completed.Add(1)),
				Total:     total,
				Error:     res.result.Err,
			})
		}
	}

	return results
}

// extract processes a single URL.
func (r *Runner) extract(ctx context.Context, rawURL string) *extractcss.Result {
	result := &extractcss.Result{URL: rawURL}

	if r.RateLimiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
				result.Err = err
				return result
			}
		}
	}

	css, err := r.Extractor.Extract(ctx, rawURL, r.Options)
	if err != nil {
		result.Err = err
		return result
	}

	result.CSS = css
	result.Bytes = len(css)
	result.Hash = ComputeHash(css)
	return result
}

// ComputeHash returns the xxhash of content as hex.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
