package finetune

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// stopTimeout bounds how long Stop waits for an in-flight trigger. The
// trigger's context is cancelled on shutdown, so a run polling a remote job
// returns promptly; the bound covers the remainder.
const stopTimeout = 10 * time.Second

// Scheduler triggers fine-tune runs on a cron schedule in server mode.
// Overlapping triggers are harmless: Runner serializes runs and an
// in-flight run makes the next trigger fail fast.
type Scheduler struct {
	runner *Runner
	spec   string
	cron   *cron.Cron
}

// NewScheduler creates a scheduler for the given cron spec (standard five
// field syntax, e.g. "0 3 * * *").
func NewScheduler(runner *Runner, spec string) *Scheduler {
	return &Scheduler{
		runner: runner,
		spec:   spec,
		cron:   cron.New(),
	}
}

// Start validates the schedule and begins triggering runs. Triggered runs
// inherit ctx, so cancelling it aborts an in-flight run.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		fmt.Printf("Scheduled fine-tune run starting\n")
		model, err := s.runner.Run(ctx)
		if err != nil {
			fmt.Printf("Scheduled fine-tune run skipped: %v\n", err)
			return
		}
		fmt.Printf("Scheduled fine-tune run finished: %s\n", model)
	})
	if err != nil {
		return fmt.Errorf("invalid fine-tune schedule '%s': %w", s.spec, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits, up to a bound, for a running trigger
// to return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(stopTimeout):
	}
}
