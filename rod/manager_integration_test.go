//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/extractcss/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_RecyclesBrowserAfterMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(3))
	require.NoError(t, err)
	defer manager.Close()

	var first any
	for i := 0; i < 3; i++ {
		browser, release, err := manager.Acquire()
		require.NoError(t, err)
		if first == nil {
			first = browser
		}
		release()
	}

	// Fourth page exceeds the limit and gets a fresh browser
	second, release, err := manager.Acquire()
	require.NoError(t, err)
	defer release()

	assert.NotSame(t, first, second)
}

func TestBrowserManager_DoesNotRecycleBeforeMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
	require.NoError(t, err)
	defer manager.Close()

	first, release, err := manager.Acquire()
	require.NoError(t, err)
	release()

	same, release, err := manager.Acquire()
	require.NoError(t, err)
	release()

	assert.Same(t, first, same)
}

func TestBrowserManager_DoesNotRecycleWhilePagesAreOpen(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(1))
	require.NoError(t, err)
	defer manager.Close()

	first, releaseFirst, err := manager.Acquire()
	require.NoError(t, err)

	// Limit reached, but the first page is still open
	same, releaseSecond, err := manager.Acquire()
	require.NoError(t, err)

	assert.Same(t, first, same)
	releaseFirst()
	releaseSecond()
}

func TestBrowserManager_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NoError(t, manager.Close())

	_, _, err = manager.Acquire()

	assert.Error(t, err)
}
