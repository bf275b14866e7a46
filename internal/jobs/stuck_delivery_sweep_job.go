package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/metrics"
)

const StuckDeliverySweep = "stuck_delivery_sweep"

type StuckDeliveriesCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteStuckDeliveriesCommand) (commands.SweepResult, error)
}

// StuckDeliverySweepJob force-completes orders left in delivery past the timeout.
type StuckDeliverySweepJob struct {
	*sweepJob
}

func NewStuckDeliverySweepJob(
	spec string,
	timeout time.Duration,
	location *time.Location,
	handler StuckDeliveriesCompleter,
	clock kernel.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *StuckDeliverySweepJob {
	sweep := func(ctx context.Context, now time.Time, timeout time.Duration) (commands.SweepResult, error) {
		cmd, err := commands.NewCompleteStuckDeliveriesCommand(now, timeout)
		if err != nil {
			return commands.SweepResult{}, err
		}
		return handler.Handle(ctx, cmd)
	}
	return &StuckDeliverySweepJob{
		sweepJob: newSweepJob(StuckDeliverySweep, spec, timeout, location, sweep, clock, m, logger),
	}
}
