// Package rod implements extractcss.Extractor with a headless Chrome
// browser driven by go-rod.
package rod

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/extractcss"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds a single extraction, from opening the page to
// reading its stylesheets.
const DefaultTimeout = 30 * time.Second

// Ensure Extractor implements extractcss.Extractor at compile time.
var _ extractcss.Extractor = (*Extractor)(nil)

var errClosed = extractcss.Errorf(extractcss.EINVALID, "extractor is closed")

// Extractor collects the CSS of rendered pages using Chrome browser automation.
// Extractor is safe for concurrent use by multiple goroutines; each call
// works in its own tab of a shared browser.
type Extractor struct {
	manager  *BrowserManager
	fetcher  extractcss.Fetcher
	timeout  time.Duration
	maxPages int64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout sets the time limit for a single extraction.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// WithBrowserMaxPages sets how many pages the browser serves before it is
// recycled. Defaults to DefaultMaxPages if not specified.
func WithBrowserMaxPages(n int64) Option {
	return func(e *Extractor) {
		e.maxPages = n
	}
}

// WithFetcher sets the fetcher used to read stylesheets the page is not
// allowed to inspect, such as sheets served from another origin.
// Without a fetcher those sheets contribute no CSS.
func WithFetcher(f extractcss.Fetcher) Option {
	return func(e *Extractor) {
		e.fetcher = f
	}
}

// NewExtractor creates a new Extractor that launches a headless Chrome browser.
// Close must be called when the Extractor is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		timeout:  DefaultTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(e)
	}

	manager, err := NewBrowserManager(WithMaxPages(e.maxPages))
	if err != nil {
		return nil, err
	}
	e.manager = manager

	return e, nil
}

// Extract navigates to the URL, waits for the configured load condition and
// returns the concatenated rule text of every stylesheet in the document.
//
// Navigation failures are returned as reported by the browser. A main
// document status outside 2xx returns *extractcss.StatusError.
func (e *Extractor) Extract(ctx context.Context, url string, opts extractcss.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := opts.Validate(); err != nil {
		return "", err
	}
	event, err := lifecycleEvent(opts.LoadCondition())
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	browser, release, err := e.manager.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	// The tab must still close after ctx has expired.
	defer page.Context(context.WithoutCancel(ctx)).Close()

	status, err := navigate(page, url, event)
	if err != nil {
		return "", err
	}
	// Non-network schemes such as file:// report status 0.
	if status != 0 {
		if err := extractcss.CheckStatus(url, status); err != nil {
			return "", err
		}
	}

	res, err := page.Eval(collectStyleSheets)
	if err != nil {
		return "", fmt.Errorf("reading stylesheets: %w", err)
	}

	var sheets []extractcss.StyleSheet
	if err := json.Unmarshal([]byte(res.Value.Str()), &sheets); err != nil {
		return "", fmt.Errorf("decoding stylesheets: %w", err)
	}

	if err := extractcss.ResolveStyleSheets(ctx, sheets, e.fetcher); err != nil {
		return "", err
	}

	return extractcss.JoinStyleSheets(sheets), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (e *Extractor) Close() error {
	return e.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (e *Extractor) LauncherPID() int {
	return e.manager.LauncherPID()
}

// ExtractCSS launches a browser, extracts the CSS of a single page and shuts
// the browser down again. Use an Extractor to reuse the browser across calls.
func ExtractCSS(ctx context.Context, url string, opts extractcss.Options, options ...Option) (string, error) {
	e, err := NewExtractor(options...)
	if err != nil {
		return "", err
	}
	defer e.Close()

	return e.Extract(ctx, url, opts)
}
