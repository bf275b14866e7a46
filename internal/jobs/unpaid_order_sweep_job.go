package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/metrics"
)

const UnpaidOrderSweep = "unpaid_order_sweep"

type UnpaidOrdersCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelUnpaidOrdersCommand) (commands.SweepResult, error)
}

// UnpaidOrderSweepJob cancels orders still waiting for payment after the timeout.
type UnpaidOrderSweepJob struct {
	*sweepJob
}

func NewUnpaidOrderSweepJob(
	spec string,
	timeout time.Duration,
	location *time.Location,
	handler UnpaidOrdersCanceller,
	clock kernel.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *UnpaidOrderSweepJob {
	sweep := func(ctx context.Context, now time.Time, timeout time.Duration) (commands.SweepResult, error) {
		cmd, err := commands.NewCancelUnpaidOrdersCommand(now, timeout)
		if err != nil {
			return commands.SweepResult{}, err
		}
		return handler.Handle(ctx, cmd)
	}
	return &UnpaidOrderSweepJob{
		sweepJob: newSweepJob(UnpaidOrderSweep, spec, timeout, location, sweep, clock, m, logger),
	}
}
