package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// sweepJob runs one reaper sweep on its own cron scheduler.
type sweepJob struct {
	name     string
	spec     string
	timeout  time.Duration
	sweep    func(ctx context.Context, now time.Time, timeout time.Duration) (commands.SweepResult, error)
	clock    kernel.Clock
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
	runCtx   context.Context
	stopRuns context.CancelFunc
}

func newSweepJob(
	name, spec string,
	timeout time.Duration,
	location *time.Location,
	sweep func(ctx context.Context, now time.Time, timeout time.Duration) (commands.SweepResult, error),
	clock kernel.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *sweepJob {
	logger = logger.With("component", name+"_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	if location == nil {
		location = time.Local
	}
	runCtx, stopRuns := context.WithCancel(context.Background())

	return &sweepJob{
		name:    name,
		spec:    spec,
		timeout: timeout,
		sweep:   sweep,
		clock:   clock,
		metrics: m,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger:   logger,
		runCtx:   runCtx,
		stopRuns: stopRuns,
	}
}

func (j *sweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(j.runCtx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Sweep job started", "schedule", j.spec, "timeout", j.timeout.String())
	return nil
}

// Stop cancels a running sweep and waits for it to return.
func (j *sweepJob) Stop() {
	j.stopRuns()
	<-j.cron.Stop().Done()
	j.logger.Info("Sweep job stopped")
}

// Run executes the sweep once. Failures are logged and counted, never returned.
func (j *sweepJob) Run(ctx context.Context) {
	started := time.Now()
	result, err := j.sweep(ctx, j.clock.Now(), j.timeout)
	j.metrics.SweepFinished(j.name, result.Applied, result.Skipped, result.Failed, err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Sweep failed", "error", err, "applied", result.Applied)
		return
	}
	if result.Candidates == 0 {
		j.logger.DebugContext(ctx, "Sweep found no candidates")
		return
	}
	j.logger.InfoContext(ctx, "Sweep finished",
		"candidates", result.Candidates,
		"applied", result.Applied,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", time.Since(started).String(),
	)
}
