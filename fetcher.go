package extractcss

import "context"

// Fetcher retrieves the raw body of a URL without rendering it.
type Fetcher interface {
	// Fetch returns the response body as text.
	// Responses outside 2xx fail with *StatusError.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
