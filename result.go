package extractcss

import "context"

// Result is the outcome of extracting CSS from one URL.
type Result struct {
	URL   string `json:"url"`
	CSS   string `json:"css"`
	Bytes int    `json:"bytes"`
	Hash  string `json:"hash"`
	Err   error  `json:"-"`
}

// Validate returns an error if the result cannot be written.
func (r *Result) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if r.Err != nil {
		return Errorf(EINVALID, "result for %s has an error", r.URL)
	}
	return nil
}

// ResultWriter persists extraction results.
type ResultWriter interface {
	WriteResult(ctx context.Context, r *Result) error
}

// Progress reports batch extraction progress.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as URLs are processed.
type ProgressFunc func(Progress)

// DomainLimiter throttles requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	Wait(ctx context.Context, domain string) error
}
