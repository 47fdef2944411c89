package location

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"sos-service/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("new registry is empty", func(t *testing.T) {
		r := NewMemoryRegistry()

		snap, err := r.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap)

		n, err := r.Len(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("upsert overwrites in place", func(t *testing.T) {
		r := NewMemoryRegistry()

		require.NoError(t, r.Upsert(ctx, "alice", geo.Coordinate{Latitude: 1, Longitude: 1}))
		require.NoError(t, r.Upsert(ctx, "alice", geo.Coordinate{Latitude: 2, Longitude: 2}))

		snap, err := r.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap, 1)
		assert.Equal(t, "alice", snap[0].UserID)
		assert.Equal(t, geo.Coordinate{Latitude: 2, Longitude: 2}, snap[0].Coordinate)
	})

	t.Run("snapshot is ordered by user id", func(t *testing.T) {
		r := NewMemoryRegistry()
		for _, id := range []string{"carol", "alice", "bob"} {
			require.NoError(t, r.Upsert(ctx, id, geo.Coordinate{}))
		}

		snap, err := r.Snapshot(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(snap))
		for _, e := range snap {
			ids = append(ids, e.UserID)
		}
		assert.Equal(t, []string{"alice", "bob", "carol"}, ids)
	})

	t.Run("snapshot is detached from later writes", func(t *testing.T) {
		r := NewMemoryRegistry()
		require.NoError(t, r.Upsert(ctx, "alice", geo.Coordinate{Latitude: 1, Longitude: 1}))

		snap, err := r.Snapshot(ctx)
		require.NoError(t, err)

		require.NoError(t, r.Upsert(ctx, "alice", geo.Coordinate{Latitude: 9, Longitude: 9}))
		require.NoError(t, r.Upsert(ctx, "bob", geo.Coordinate{}))

		require.Len(t, snap, 1)
		assert.Equal(t, 1.0, snap[0].Coordinate.Latitude)
	})

	t.Run("evict older than cutoff", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		r := newMemoryRegistry(func() time.Time { return now })

		require.NoError(t, r.Upsert(ctx, "old", geo.Coordinate{}))
		now = now.Add(10 * time.Minute)
		require.NoError(t, r.Upsert(ctx, "fresh", geo.Coordinate{}))

		evicted, err := r.EvictOlderThan(ctx, now.Add(-5*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, evicted)

		snap, err := r.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap, 1)
		assert.Equal(t, "fresh", snap[0].UserID)
	})
}

func TestMemoryRegistry_ConcurrentDistinctUpserts(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	const n = 500
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Upsert(ctx, fmt.Sprintf("user-%d", i), geo.Coordinate{Latitude: float64(i % 90), Longitude: 0})
		}(i)
	}
	wg.Wait()

	snap, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap, n)
}

func TestMemoryRegistry_ConcurrentReadersAndWriters(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				// latitude and longitude always move together
				v := float64(i % 90)
				_ = r.Upsert(ctx, fmt.Sprintf("user-%d", w), geo.Coordinate{Latitude: v, Longitude: v})
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				snap, err := r.Snapshot(ctx)
				if err != nil {
					t.Errorf("snapshot: %v", err)
					return
				}
				for _, e := range snap {
					if e.Coordinate.Latitude != e.Coordinate.Longitude {
						t.Errorf("half-written entry observed: %+v", e)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	n, err := r.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
