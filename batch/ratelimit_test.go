package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/extractcss/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitTwice reports how long the second of two back to back waits took.
func waitTwice(t *testing.T, limiter *batch.DomainLimiter, first, second string) time.Duration {
	t.Helper()

	require.NoError(t, limiter.Wait(context.Background(), first))
	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background(), second))
	return time.Since(start)
}

func TestDomainLimiter_SharesBucketPerSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		first, second string
	}{
		{"same host", "example.com", "example.com"},
		{"port ignored", "example.com:8080", "example.com"},
		{"different ports", "example.com:8080", "example.com:9090"},
		{"case ignored", "Example.COM", "example.com"},
		{"trailing dot ignored", "example.com.", "example.com:443"},
		{"ipv6 literal", "[::1]:8080", "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := batch.NewDomainLimiter(10, 1)

			elapsed := waitTwice(t, limiter, tt.first, tt.second)

			assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "second load should wait")
			assert.Equal(t, 1, limiter.Sites())
		})
	}
}

func TestDomainLimiter_SeparateSitesDoNotWait(t *testing.T) {
	t.Parallel()

	limiter := batch.NewDomainLimiter(1, 1)

	elapsed := waitTwice(t, limiter, "a.example.com", "b.example.com")

	assert.Less(t, elapsed, 50*time.Millisecond)
	assert.Equal(t, 2, limiter.Sites())
}

func TestDomainLimiter_Burst(t *testing.T) {
	t.Parallel()

	limiter := batch.NewDomainLimiter(5, 3)

	start := time.Now()
	for range 3 {
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond, "burst loads should not wait")

	start = time.Now()
	require.NoError(t, limiter.Wait(context.Background(), "example.com:8443"))
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond, "load after the burst should wait")
}

func TestDomainLimiter_BurstBelowOneUsesDefault(t *testing.T) {
	t.Parallel()

	limiter := batch.NewDomainLimiter(10, 0)

	elapsed := waitTwice(t, limiter, "example.com", "example.com")

	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
}

func TestDomainLimiter_Disabled(t *testing.T) {
	t.Parallel()

	limiter := batch.NewDomainLimiter(0, 1)

	start := time.Now()
	for range 5 {
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	}

	assert.Less(t, time.Since(start), 50*time.Millisecond, "zero rate should not wait")
	assert.Zero(t, limiter.Sites())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, limiter.Wait(ctx, "example.com"), context.Canceled)
}

func TestDomainLimiter_WaitOutlastingDeadline(t *testing.T) {
	t.Parallel()

	limiter := batch.NewDomainLimiter(1, 1)
	require.NoError(t, limiter.Wait(context.Background(), "example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.Wait(ctx, "example.com:80")

	require.Error(t, err)
	assert.Less(t, time.Since(start), 40*time.Millisecond, "should fail without waiting out the deadline")
}
