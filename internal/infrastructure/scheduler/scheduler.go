// Package scheduler runs the daily reminder job on a cron schedule.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ReminderSpec fires the reminder job every day at 07:30 server time.
const ReminderSpec = "30 7 * * *"

// Runner is the job executed on each tick.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler wraps a cron instance with a single registered job.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New builds a Scheduler that runs job on the given cron spec. Overlapping
// runs are skipped rather than queued.
func New(spec string, job Runner, log zerolog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	_, err := c.AddFunc(spec, func() {
		if err := job.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("scheduled reminder run failed")
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start begins running the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.log.Info().Msg("reminder scheduler started")
	s.cron.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("reminder scheduler stopped")
}
