package notification

import (
	"context"
	"fmt"
	"time"

	"sos-service/internal/geo"

	"go.uber.org/zap"
)

type DispatcherConfig struct {
	MaxAttempts    int
	Backoff        time.Duration
	AttemptTimeout time.Duration
	Title          string
	AlertType      string
}

type Dispatcher struct {
	provider Provider
	cfg      DispatcherConfig
	logger   *zap.SugaredLogger
}

func NewDispatcher(provider Provider, cfg DispatcherConfig, logger *zap.SugaredLogger) *Dispatcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Dispatcher{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// Send delivers one alert to one recipient, retrying with a fixed backoff
// until it succeeds or MaxAttempts is reached. Every provider error is
// treated as retryable.
func (d *Dispatcher) Send(ctx context.Context, recipientID, body string, coord geo.Coordinate, screen string) Outcome {
	msg := Message{
		RecipientID: recipientID,
		Title:       d.cfg.Title,
		Body:        body,
		Data: Data{
			Type:      d.cfg.AlertType,
			Latitude:  coord.Latitude,
			Longitude: coord.Longitude,
			Screen:    screen,
		},
	}

	start := time.Now()
	outcome := Outcome{RecipientID: recipientID}

	var lastErr error
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		outcome.Attempts = attempt

		lastErr = d.attempt(ctx, msg)
		if lastErr == nil {
			outcome.Delivered = true
			outcome.Duration = time.Since(start)
			d.logger.Infow("✅ notification delivered",
				"recipient_id", recipientID,
				"attempt", attempt,
			)
			return outcome
		}

		d.logger.Warnw("notification attempt failed",
			"recipient_id", recipientID,
			"attempt", attempt,
			"max_attempts", d.cfg.MaxAttempts,
			"error", lastErr,
		)

		if attempt == d.cfg.MaxAttempts {
			break
		}

		if !d.wait(ctx) {
			lastErr = fmt.Errorf("retry aborted: %w", ctx.Err())
			break
		}
	}

	outcome.Duration = time.Since(start)
	outcome.Err = fmt.Errorf("%w after %d attempts: %w", ErrDeliveryExhausted, outcome.Attempts, lastErr)

	d.logger.Errorw("❌ notification delivery exhausted",
		"recipient_id", recipientID,
		"attempts", outcome.Attempts,
		"duration", outcome.Duration,
		"error", lastErr,
	)
	return outcome
}

func (d *Dispatcher) attempt(ctx context.Context, msg Message) error {
	if d.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.AttemptTimeout)
		defer cancel()
	}
	return d.provider.Send(ctx, msg)
}

func (d *Dispatcher) wait(ctx context.Context) bool {
	if d.cfg.Backoff <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d.cfg.Backoff)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
