package searcher

import (
	"bridge/game"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallel(t *testing.T) {
	t.Run("runs every job", func(t *testing.T) {
		results := make([]int, 100)
		err := Parallel(4, len(results), func(i int) error {
			results[i] = i * i
			return nil
		})
		require.NoError(t, err)
		for i, r := range results {
			require.Equal(t, i*i, r)
		}
	})

	t.Run("limits concurrency", func(t *testing.T) {
		var running, peak atomic.Int32
		err := Parallel(3, 50, func(i int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return nil
		})
		require.NoError(t, err)
		require.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("waits for all jobs and returns an error", func(t *testing.T) {
		var done atomic.Int32
		boom := errors.New("boom")
		err := Parallel(2, 10, func(i int) error {
			done.Add(1)
			if i == 3 {
				return boom
			}
			return nil
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, int32(10), done.Load(), "No job is cancelled")
	})

	t.Run("turns panics into errors", func(t *testing.T) {
		err := Parallel(2, 4, func(i int) error {
			if i == 2 {
				panic(fmt.Errorf("%w: corrupted hand", game.ErrInvariant))
			}
			return nil
		})
		require.ErrorIs(t, err, game.ErrInvariant)
	})

	t.Run("rejects an empty pool", func(t *testing.T) {
		require.Error(t, Parallel(0, 1, func(int) error { return nil }))
	})
}
