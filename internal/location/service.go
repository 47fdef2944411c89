package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sos-service/internal/geo"
	"sos-service/pkg/constants"

	"go.uber.org/zap"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Broadcaster publishes best-effort realtime events.
type Broadcaster interface {
	Publish(event string, payload any)
}

type LocationService interface {
	UpdateLocation(ctx context.Context, userID string, coord geo.Coordinate) error
	FindNearby(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]NearbyUser, error)
	EvictStale(ctx context.Context, staleAfter time.Duration) (int, error)
}

type locationService struct {
	registry    Registry
	broadcaster Broadcaster
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewLocationService(registry Registry, broadcaster Broadcaster, logger *zap.SugaredLogger) LocationService {
	return &locationService{
		registry:    registry,
		broadcaster: broadcaster,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *locationService) UpdateLocation(ctx context.Context, userID string, coord geo.Coordinate) error {
	if userID == "" {
		return errors.New("userId is required")
	}
	if !coord.Valid() {
		return ErrInvalidCoordinates
	}

	if err := s.registry.Upsert(ctx, userID, coord); err != nil {
		s.logger.Errorw("❌ location upsert failed", "user_id", userID, "error", err)
		return fmt.Errorf("upsert location: %w", err)
	}

	s.logger.Debugw("📍 location updated",
		"user_id", userID,
		"latitude", coord.Latitude,
		"longitude", coord.Longitude,
	)

	if s.broadcaster != nil {
		s.broadcaster.Publish(constants.EventLocationUpdate, map[string]any{
			"userId":    userID,
			"latitude":  coord.Latitude,
			"longitude": coord.Longitude,
		})
	}

	return nil
}

func (s *locationService) FindNearby(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]NearbyUser, error) {
	if !center.Valid() {
		return nil, ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		radiusKm = constants.DefaultRadiusKm
	}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		s.logger.Errorw("❌ registry snapshot failed", "error", err)
		return nil, fmt.Errorf("snapshot registry: %w", err)
	}

	nearby := FindWithinRadius(center, radiusKm, snapshot)
	s.logger.Infow("🔎 nearby query",
		"latitude", center.Latitude,
		"longitude", center.Longitude,
		"radius_km", radiusKm,
		"scanned", len(snapshot),
		"found", len(nearby),
	)

	return nearby, nil
}

func (s *locationService) EvictStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	if staleAfter <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-staleAfter)
	evicted, err := s.registry.EvictOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Errorw("❌ stale location eviction failed", "error", err)
		return 0, err
	}

	if evicted > 0 {
		s.logger.Infow("🧹 evicted stale locations", "count", evicted, "cutoff", cutoff)
	}
	return evicted, nil
}
