package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/metrics"
)

// Schedule configures both reaper sweeps. Specs are cron expressions with a
// seconds field or descriptors such as "@every 1m".
type Schedule struct {
	UnpaidSweepSpec   string
	UnpaidTimeout     time.Duration
	StuckDeliverySpec string
	StuckTimeout      time.Duration
	Location          *time.Location
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	unpaidOrderSweepJob   *UnpaidOrderSweepJob
	stuckDeliverySweepJob *StuckDeliverySweepJob
}

func NewJobManager(
	schedule Schedule,
	unpaidHandler UnpaidOrdersCanceller,
	stuckHandler StuckDeliveriesCompleter,
	clock kernel.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unpaidOrderSweepJob: NewUnpaidOrderSweepJob(
			schedule.UnpaidSweepSpec, schedule.UnpaidTimeout, schedule.Location,
			unpaidHandler, clock, m, logger,
		),
		stuckDeliverySweepJob: NewStuckDeliverySweepJob(
			schedule.StuckDeliverySpec, schedule.StuckTimeout, schedule.Location,
			stuckHandler, clock, m, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unpaidOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start unpaid order sweep job: %w", err)
	}

	if err := jm.stuckDeliverySweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.unpaidOrderSweepJob.Stop()
		return fmt.Errorf("failed to start stuck delivery sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stuckDeliverySweepJob.Stop()
	jm.unpaidOrderSweepJob.Stop()
}
