package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/extractcss"
	"github.com/fwojciec/extractcss/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteResultFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *extractcss.Result
		w := &mock.ResultWriter{
			WriteResultFn: func(_ context.Context, r *extractcss.Result) error {
				calledWith = r
				return nil
			},
		}

		r := &extractcss.Result{URL: "https://example.com/", CSS: "body { color: teal; }"}

		err := w.WriteResult(context.Background(), r)

		require.NoError(t, err)
		assert.Same(t, r, calledWith)
	})
}
