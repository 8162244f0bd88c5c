package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/booking"
)

// StartMeetingSweep schedules the nightly job that marks past confirmed
// meetings as completed. Returns the scheduler so the caller can stop it
// on shutdown.
func StartMeetingSweep(engine booking.SchedulingEngine, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	// Shortly after midnight, local time.
	_, err := c.AddFunc("10 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := engine.CompletePastMeetings(ctx)
		if err != nil {
			logger.Error("meeting sweep failed", zap.Error(err))
			return
		}
		logger.Info("meeting sweep finished", zap.Int64("completed", n))
	})
	if err != nil {
		logger.Fatal("failed to schedule meeting sweep", zap.Error(err))
	}

	c.Start()
	return c
}
