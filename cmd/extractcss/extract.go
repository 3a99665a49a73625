package main

import (
	"fmt"

	"github.com/fwojciec/extractcss"
	"github.com/fwojciec/extractcss/batch"
)

// ExtractCmd extracts CSS from one or more URLs.
type ExtractCmd struct {
	URLs        []string
	Options     extractcss.Options
	Concurrency int
	Rate        float64
	Burst       int
}

// Run extracts every URL, then prints or writes the successful results.
// A single failing URL returns its error unchanged; with several URLs the
// failures are listed on stderr and summarised in the returned error.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Extractor:   deps.Extractor,
		RateLimiter: batch.NewDomainLimiter(c.Rate, c.Burst),
		Options:     c.Options,
		Concurrency: c.Concurrency,
	}

	results := runner.Run(deps.Ctx, c.URLs, func(p extractcss.Progress) {
		deps.Logger.Debug("progress",
			"url", p.URL,
			"completed", p.Completed,
			"total", p.Total,
			"err", p.Error,
		)
	})

	var failed []*extractcss.Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		if err := c.output(deps, r, len(results)); err != nil {
			return err
		}
	}

	if len(failed) == 0 {
		return nil
	}
	if len(results) == 1 {
		return failed[0].Err
	}
	for _, r := range failed {
		fmt.Fprintf(deps.Stderr, "%s: %v\n", r.URL, r.Err)
	}
	return fmt.Errorf("%d of %d URLs failed", len(failed), len(results))
}

// output sends a successful result to the writer, or to stdout. Several
// results on stdout are separated by a comment naming their URL.
func (c *ExtractCmd) output(deps *Dependencies, r *extractcss.Result, total int) error {
	if deps.Writer != nil {
		if err := deps.Writer.WriteResult(deps.Ctx, r); err != nil {
			return fmt.Errorf("writing %s: %w", r.URL, err)
		}
		deps.Logger.Info("wrote", "url", r.URL, "bytes", r.Bytes, "hash", r.Hash)
		return nil
	}

	if total == 1 {
		_, err := fmt.Fprint(deps.Stdout, r.CSS)
		return err
	}
	_, err := fmt.Fprintf(deps.Stdout, "/* %s */\n%s\n", r.URL, r.CSS)
	return err
}
