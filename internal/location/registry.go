package location

import (
	"context"
	"sort"
	"sync"
	"time"

	"sos-service/internal/geo"
)

// Registry holds the latest known coordinate of every user. Implementations
// must be safe for concurrent use.
type Registry interface {
	// Upsert inserts or overwrites the entry for userID.
	Upsert(ctx context.Context, userID string, coord geo.Coordinate) error
	// Snapshot returns a point-in-time copy of all entries ordered by user id.
	Snapshot(ctx context.Context) ([]UserLocation, error)
	// EvictOlderThan removes entries last updated before cutoff.
	EvictOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	Len(ctx context.Context) (int, error)
}

type memoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]UserLocation
	now     func() time.Time
}

func NewMemoryRegistry() Registry {
	return newMemoryRegistry(time.Now)
}

func newMemoryRegistry(now func() time.Time) *memoryRegistry {
	return &memoryRegistry{
		entries: make(map[string]UserLocation),
		now:     now,
	}
}

func (r *memoryRegistry) Upsert(_ context.Context, userID string, coord geo.Coordinate) error {
	entry := UserLocation{
		UserID:     userID,
		Coordinate: coord,
		UpdatedAt:  r.now().UTC(),
	}

	r.mu.Lock()
	r.entries[userID] = entry
	r.mu.Unlock()

	return nil
}

func (r *memoryRegistry) Snapshot(_ context.Context) ([]UserLocation, error) {
	r.mu.RLock()
	out := make([]UserLocation, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *memoryRegistry) EvictOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.entries {
		if entry.UpdatedAt.Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted, nil
}

func (r *memoryRegistry) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
