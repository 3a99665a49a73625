package extractcss

import (
	"context"
	"strings"
)

// WaitUntil names the page lifecycle point after which CSS is collected.
type WaitUntil string

// Supported load conditions.
const (
	// WaitLoad waits for the window load event.
	WaitLoad WaitUntil = "load"
	// WaitDOMContentLoaded waits until the document has been parsed.
	WaitDOMContentLoaded WaitUntil = "domcontentloaded"
	// WaitNetworkIdle waits until there have been no network connections for 500ms.
	WaitNetworkIdle WaitUntil = "networkidle0"
	// WaitNetworkAlmostIdle waits until there have been at most 2 network
	// connections for 500ms.
	WaitNetworkAlmostIdle WaitUntil = "networkidle2"
)

// DefaultWaitUntil is used when Options.WaitUntil is empty. Waiting for the
// network to go idle gives scripts time to inject their styles.
const DefaultWaitUntil = WaitNetworkIdle

// WaitUntilValues lists every accepted load condition.
func WaitUntilValues() []WaitUntil {
	return []WaitUntil{WaitLoad, WaitDOMContentLoaded, WaitNetworkIdle, WaitNetworkAlmostIdle}
}

// ParseWaitUntil converts a name into a WaitUntil. An empty name yields
// DefaultWaitUntil.
func ParseWaitUntil(s string) (WaitUntil, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultWaitUntil, nil
	}
	for _, w := range WaitUntilValues() {
		if string(w) == s {
			return w, nil
		}
	}
	return "", Errorf(EINVALID, "unknown wait condition %q", s)
}

// Options configures a single extraction.
type Options struct {
	// WaitUntil controls when the page counts as loaded.
	// The zero value means DefaultWaitUntil.
	WaitUntil WaitUntil
}

// Validate returns an error if the options contain invalid fields.
func (o Options) Validate() error {
	_, err := ParseWaitUntil(string(o.WaitUntil))
	return err
}

// LoadCondition returns the effective wait condition in its canonical
// lower case form. Invalid values are returned unchanged.
func (o Options) LoadCondition() WaitUntil {
	w, err := ParseWaitUntil(string(o.WaitUntil))
	if err != nil {
		return o.WaitUntil
	}
	return w
}

// Extractor returns the CSS applied to the page at a URL.
type Extractor interface {
	// Extract loads the page and returns the concatenated rule text of
	// every stylesheet in document stylesheet order. A main document
	// response outside 2xx fails with *StatusError.
	Extract(ctx context.Context, url string, opts Options) (css string, err error)

	// Close releases resources held by the extractor.
	Close() error
}
