package cron

import (
	"context"
	"time"

	"intothestar/config"
	bookingRepo "intothestar/database/repository/booking"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartPendingSweeper runs an hourly job that parks bookings stuck in
// pending_payment as abandoned once they pass the configured age. The
// sweeper never touches slots: a pending booking has never held one.
// Disabled by default; an abandoned booking can still be confirmed if the
// guest's payment eventually verifies.
func StartPendingSweeper(repo bookingRepo.BookingRepository, logger *zap.Logger) *cron.Cron {
	if !config.AppConfig.SweeperEnabled {
		return nil
	}

	maxAge := time.Duration(config.AppConfig.SweeperMaxPendingAgeHours) * time.Hour
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cutoff := time.Now().UTC().Add(-maxAge)
		swept, err := repo.MarkAbandonedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Pending sweep failed", zap.Error(err))
			return
		}
		if swept > 0 {
			logger.Info("Parked stale pending bookings",
				zap.Int64("count", swept),
				zap.Time("cutoff", cutoff),
			)
		}
	})
	if err != nil {
		logger.Error("Failed to schedule pending sweeper", zap.Error(err))
		return nil
	}

	c.Start()
	logger.Info("Pending sweeper enabled", zap.Duration("maxAge", maxAge))
	return c
}
