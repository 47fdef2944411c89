package location

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sos-service/internal/geo"
	"sos-service/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Publish(event string, _ any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

type failingRegistry struct{ Registry }

func (failingRegistry) Snapshot(context.Context) ([]UserLocation, error) {
	return nil, errors.New("store unavailable")
}

func (failingRegistry) Upsert(context.Context, string, geo.Coordinate) error {
	return errors.New("store unavailable")
}

func TestLocationService_UpdateThenFind(t *testing.T) {
	ctx := context.Background()
	b := &recordingBroadcaster{}
	svc := NewLocationService(NewMemoryRegistry(), b, zap.NewNop().Sugar())

	require.NoError(t, svc.UpdateLocation(ctx, "alice", geo.Coordinate{Latitude: 10, Longitude: 10}))
	require.NoError(t, svc.UpdateLocation(ctx, "alice", geo.Coordinate{Latitude: 0, Longitude: 0.01}))

	nearby, err := svc.FindNearby(ctx, geo.Coordinate{}, 5)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "alice", nearby[0].UserID)
	assert.Equal(t, 0.01, nearby[0].Longitude)

	assert.Equal(t, []string{constants.EventLocationUpdate, constants.EventLocationUpdate}, b.events)
}

func TestLocationService_DefaultRadius(t *testing.T) {
	ctx := context.Background()
	svc := NewLocationService(NewMemoryRegistry(), nil, zap.NewNop().Sugar())

	// ~4.4 km east of the origin
	require.NoError(t, svc.UpdateLocation(ctx, "bob", geo.Coordinate{Latitude: 0, Longitude: 0.04}))

	nearby, err := svc.FindNearby(ctx, geo.Coordinate{}, 0)
	require.NoError(t, err)
	assert.Len(t, nearby, 1)
}

func TestLocationService_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewLocationService(NewMemoryRegistry(), nil, zap.NewNop().Sugar())

	assert.ErrorIs(t, svc.UpdateLocation(ctx, "alice", geo.Coordinate{Latitude: 91}), ErrInvalidCoordinates)
	assert.Error(t, svc.UpdateLocation(ctx, "", geo.Coordinate{}))

	_, err := svc.FindNearby(ctx, geo.Coordinate{Longitude: 200}, 5)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestLocationService_RegistryErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewLocationService(failingRegistry{}, nil, zap.NewNop().Sugar())

	assert.Error(t, svc.UpdateLocation(ctx, "alice", geo.Coordinate{}))

	_, err := svc.FindNearby(ctx, geo.Coordinate{}, 5)
	assert.Error(t, err)
}

func TestLocationService_EvictStale(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	registry := newMemoryRegistry(func() time.Time { return now })

	svc := NewLocationService(registry, nil, zap.NewNop().Sugar()).(*locationService)
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.UpdateLocation(ctx, "alice", geo.Coordinate{}))
	now = now.Add(time.Hour)
	require.NoError(t, svc.UpdateLocation(ctx, "bob", geo.Coordinate{}))

	evicted, err := svc.EvictStale(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)

	evicted, err = svc.EvictStale(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, evicted)

	n, err := registry.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
