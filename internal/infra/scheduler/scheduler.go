package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/app" // For StatusPoller interface
)

// PollScheduler runs poll cycles one after another on the caller's goroutine.
// The next cycle starts at schedule.Next(end of previous cycle).
type PollScheduler struct {
	poller   app.StatusPoller
	schedule cron.Schedule
	logger   *logrus.Entry
}

func NewPollScheduler(poller app.StatusPoller, schedule cron.Schedule, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		poller:   poller,
		schedule: schedule,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled and then returns ctx.Err().
// Cycle errors are reported through the poller and never stop the loop.
func (s *PollScheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting homework status polling...")
	for {
		s.executeCycle(ctx)
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		next := s.schedule.Next(now)
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for next poll cycle")

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
		if ctx.Err() != nil {
			break
		}
	}
	s.logger.Info("Homework status polling stopped.")
	return ctx.Err()
}

func (s *PollScheduler) executeCycle(ctx context.Context) {
	if err := s.poller.RunCycle(ctx); err != nil {
		if ctx.Err() != nil {
			// Shutting down; the failure is the cancellation itself.
			return
		}
		s.poller.ReportFailure(ctx, err)
	}
}
