// internal/app/system/tasks/runner.go

// Package tasks schedules the app's background jobs on cron
// expressions evaluated in local time.
package tasks

import (
	"context"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled unit of work.
type Job struct {
	Name string
	Spec string // standard 5-field cron expression
	Run  func(ctx context.Context) error
}

// Runner owns the cron scheduler. Jobs are added before Start and the
// runner is stopped during shutdown.
type Runner struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{cron: cron.New(), log: logger}
}

// Add schedules a job. Each invocation gets its own bounded context;
// failures are logged, never fatal.
func (r *Runner) Add(j Job) error {
	_, err := r.cron.AddFunc(j.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Long())
		defer cancel()
		if err := j.Run(ctx); err != nil {
			r.log.Error("scheduled job failed",
				zap.String("job", j.Name),
				zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	r.log.Info("scheduled job registered",
		zap.String("job", j.Name),
		zap.String("spec", j.Spec))
	return nil
}

// Start begins running scheduled jobs in the background.
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for in-flight jobs, or for ctx.
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
