package batch

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/extractcss"
	"golang.org/x/time/rate"
)

var _ extractcss.DomainLimiter = (*DomainLimiter)(nil)

// DefaultBurst is the number of pages a site may receive back to back
// before the rate applies.
const DefaultBurst = 1

// DomainLimiter spaces out page loads per site with one token bucket per
// host name. Ports and letter case are ignored, so "Example.com:8080" and
// "example.com" share a bucket; a browser loading either hits the same server.
type DomainLimiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing rps page loads per second to
// each site, with up to burst loads at once. A non-positive rps disables
// limiting; a burst below 1 means DefaultBurst.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	if burst < 1 {
		burst = DefaultBurst
	}
	return &DomainLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a page load on the site of host is allowed. host may
// carry a port. It returns the context error if ctx ends first, or
// immediately when the wait would outlast the context deadline.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(siteKey(host)).Wait(ctx)
}

// Sites returns the number of sites seen so far.
func (d *DomainLimiter) Sites() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buckets)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.rps, d.burst)
		d.buckets[key] = b
	}
	return b
}

// siteKey reduces a URL host to its lower case host name.
func siteKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
