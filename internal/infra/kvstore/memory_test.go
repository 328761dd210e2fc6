//go:build unit

package kvstore_test

import (
	"testing"
	"time"

	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/infra/kvstore"
	"ticket-monarch/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("set get delete", func(t *testing.T) {
		s := kvstore.NewMemoryStore(clk, 0)
		require.NoError(t, s.Set(ctx, "k", []byte("v1")))
		require.NoError(t, s.Set(ctx, "k", []byte("v2")))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
		assert.Equal(t, 1, s.Len())

		require.NoError(t, s.Delete(ctx, "k"))
		_, err = s.Get(ctx, "k")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.NoError(t, s.Delete(ctx, "k"), "deleting a missing key is not an error")
	})

	t.Run("stored bytes are copied", func(t *testing.T) {
		s := kvstore.NewMemoryStore(clk, 0)
		in := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", in))
		in[0] = 'X'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		got[1] = 'Y'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		s := kvstore.NewMemoryStore(clk, time.Minute)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))

		clk.Add(59 * time.Second)
		_, err := s.Get(ctx, "k")
		require.NoError(t, err)

		clk.Add(time.Second)
		_, err = s.Get(ctx, "k")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("batch sets and deletes together", func(t *testing.T) {
		s := kvstore.NewMemoryStore(clk, 0)
		require.NoError(t, s.Set(ctx, "old", []byte("v")))

		require.NoError(t, s.Batch(ctx, map[string][]byte{"new": []byte("n")}, []string{"old", "missing"}))

		_, err := s.Get(ctx, "old")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		got, err := s.Get(ctx, "new")
		require.NoError(t, err)
		assert.Equal(t, []byte("n"), got)
	})

	t.Run("purge evicts only expired entries", func(t *testing.T) {
		purgeClock := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		s := kvstore.NewMemoryStore(purgeClock, time.Minute)
		require.NoError(t, s.Set(ctx, "old", []byte("v")))
		purgeClock.Add(30 * time.Second)
		require.NoError(t, s.Set(ctx, "fresh", []byte("v")))

		n, err := s.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		purgeClock.Add(30 * time.Second)
		n, err = s.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Equal(t, 1, s.Len())

		_, err = s.Get(ctx, "fresh")
		assert.NoError(t, err)
	})
}
