package location

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScheduleEviction adds a cron job that drops locations not refreshed within
// staleAfter. Nothing is scheduled when staleAfter is zero.
func ScheduleEviction(c *cron.Cron, spec string, svc LocationService, staleAfter time.Duration, logger *zap.SugaredLogger) (cron.EntryID, error) {
	if staleAfter <= 0 {
		logger.Info("Stale location eviction disabled")
		return 0, nil
	}

	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := svc.EvictStale(ctx, staleAfter); err != nil {
			logger.Errorf("EvictStale failed: %v", err)
		}
	})
}
