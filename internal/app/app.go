package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"news-digest/internal/domain/ports"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopWait            = 5 * time.Second
)

// Job is one digest run.
type Job interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of the digest: a single run, or a cron scheduler.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
	once     bool
}

// New constructs an App. An empty schedule or once=true runs the job a single time.
func New(digest Job, logger ports.Logger, schedule string, once bool) *App {
	return &App{
		cron:     cron.New(),
		job:      digest,
		logger:   logger,
		schedule: schedule,
		once:     once,
	}
}

// Run executes the job once immediately and then according to the cron schedule, if any.
// Job failures are logged; the returned error covers only an invalid schedule.
func (a *App) Run(ctx context.Context) error {
	if a.once || a.schedule == "" {
		a.logger.Info(ctx, "running digest once")
		if err := a.job.Run(ctx); err != nil {
			a.logger.Error(ctx, "digest run failed", "error", err)
		}
		return nil
	}

	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first digest immediately")
	if err := a.job.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial digest run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopWait):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// scheduleJob registers the job; each run is bounded by scheduledRunTimeout and
// cancelled together with base.
func (a *App) scheduleJob(base context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() { a.runScheduled(base) })
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}

func (a *App) runScheduled(base context.Context) {
	ctx, cancel := context.WithTimeout(base, scheduledRunTimeout)
	defer cancel()
	if err := a.job.Run(ctx); err != nil {
		a.logger.Error(ctx, "scheduled digest run failed", "error", err)
	}
}
