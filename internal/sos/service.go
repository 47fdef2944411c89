package sos

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"sos-service/internal/geo"
	"sos-service/internal/location"
	"sos-service/internal/notification"
	"sos-service/pkg/constants"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const pressRecordTimeout = 2 * time.Second

type Dispatcher interface {
	Send(ctx context.Context, recipientID, body string, coord geo.Coordinate, screen string) notification.Outcome
}

type Options struct {
	RadiusKm     float64
	FanoutLimit  int
	NotifySender bool
}

type SosService interface {
	TriggerSos(ctx context.Context, senderID string, coord geo.Coordinate) (Result, error)
}

type sosService struct {
	registry    location.Registry
	dispatcher  Dispatcher
	counter     PressCounter
	broadcaster location.Broadcaster
	opts        Options
	logger      *zap.SugaredLogger
}

func NewSosService(
	registry location.Registry,
	dispatcher Dispatcher,
	counter PressCounter,
	broadcaster location.Broadcaster,
	opts Options,
	logger *zap.SugaredLogger,
) SosService {
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = constants.DefaultRadiusKm
	}
	if opts.FanoutLimit < 1 {
		opts.FanoutLimit = 1
	}
	return &sosService{
		registry:    registry,
		dispatcher:  dispatcher,
		counter:     counter,
		broadcaster: broadcaster,
		opts:        opts,
		logger:      logger,
	}
}

func (s *sosService) TriggerSos(ctx context.Context, senderID string, coord geo.Coordinate) (Result, error) {
	// retries must outlive a client that hangs up mid-request
	ctx = context.WithoutCancel(ctx)

	event := Event{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		Coordinate: coord,
		Message:    buildMessage(coord),
	}
	log := s.logger.With("event_id", event.ID, "sender_id", senderID)

	log.Infow("🚨 SOS triggered", "latitude", coord.Latitude, "longitude", coord.Longitude)

	go s.recordPress(ctx, senderID, log)

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		log.Errorw("❌ registry snapshot failed", "error", err)
		return Result{EventID: event.ID}, fmt.Errorf("%w: snapshot registry: %w", ErrOrchestration, err)
	}

	nearby := location.FindWithinRadius(coord, s.opts.RadiusKm, snapshot)
	event.Recipients = make([]string, 0, len(nearby))
	for _, u := range nearby {
		if u.UserID == senderID && !s.opts.NotifySender {
			continue
		}
		event.Recipients = append(event.Recipients, u.UserID)
	}

	s.publish(event)

	if len(event.Recipients) == 0 {
		log.Infow("📵 no users nearby", "radius_km", s.opts.RadiusKm, "scanned", len(snapshot))
		return Result{EventID: event.ID}, nil
	}

	log.Infow("📋 dispatching SOS", "recipients", len(event.Recipients), "radius_km", s.opts.RadiusKm)

	succeeded, err := s.fanOut(ctx, event)
	if err != nil {
		log.Errorw("❌ SOS fan-out failed", "error", err)
		return Result{EventID: event.ID}, fmt.Errorf("%w: %w", ErrOrchestration, err)
	}

	result := Result{
		EventID:   event.ID,
		Delivered: len(event.Recipients),
		Succeeded: succeeded,
		Failed:    len(event.Recipients) - succeeded,
	}

	if result.Failed > 0 {
		log.Warnw("📊 SOS partially delivered", "attempted", result.Delivered, "succeeded", result.Succeeded, "failed", result.Failed)
	} else {
		log.Infow("📊 SOS delivered", "attempted", result.Delivered, "succeeded", result.Succeeded)
	}

	return result, nil
}

// fanOut runs one independent dispatch per recipient and waits for all of
// them. Delivery failures are not errors here; only a crashed dispatch is.
func (s *sosService) fanOut(ctx context.Context, event Event) (int, error) {
	var succeeded atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.opts.FanoutLimit)

	for _, recipientID := range event.Recipients {
		recipientID := recipientID
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("dispatch to %s panicked: %v", recipientID, r)
				}
			}()

			outcome := s.dispatcher.Send(ctx, recipientID, event.Message, event.Coordinate, constants.ScreenSosAlert)
			if outcome.Delivered {
				succeeded.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(succeeded.Load()), err
	}
	return int(succeeded.Load()), nil
}

func (s *sosService) recordPress(ctx context.Context, senderID string, log *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(ctx, pressRecordTimeout)
	defer cancel()

	count, err := s.counter.Increment(ctx, senderID)
	if err != nil {
		log.Errorw("failed to record SOS press", "error", err)
		return
	}
	log.Debugw("SOS press recorded", "press_count", count)
}

func (s *sosService) publish(event Event) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Publish(constants.EventSosAlert, map[string]any{
		"eventId":    event.ID,
		"userId":     event.SenderID,
		"latitude":   event.Coordinate.Latitude,
		"longitude":  event.Coordinate.Longitude,
		"message":    event.Message,
		"recipients": len(event.Recipients),
	})
}
