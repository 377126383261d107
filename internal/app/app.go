package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"mattermost-notifier/internal/domain/ports"
)

const (
	jobTimeout  = 2 * time.Minute
	stopTimeout = 5 * time.Second
)

// Job is a unit of work run on every tick.
type Job interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of the feed digest scheduler.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(job Job, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the job once immediately and then according to the cron schedule
// until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first digest immediately")
	if err := a.runJob(ctx); err != nil {
		a.logger.Error(ctx, "initial digest run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := a.job.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled digest run failed", "error", err)
		}
	})
	return err
}

func (a *App) runJob(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	return a.job.Run(ctx)
}
