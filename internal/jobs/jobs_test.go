package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type MockUnpaidOrdersCanceller struct{ mock.Mock }

func (m *MockUnpaidOrdersCanceller) Handle(
	ctx context.Context,
	cmd commands.CancelUnpaidOrdersCommand,
) (commands.SweepResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepResult), args.Error(1)
}

type MockStuckDeliveriesCompleter struct{ mock.Mock }

func (m *MockStuckDeliveriesCompleter) Handle(
	ctx context.Context,
	cmd commands.CompleteStuckDeliveriesCommand,
) (commands.SweepResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepResult), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUnpaidOrderSweepJob_Run_PassesDeadline(t *testing.T) {
	handler := &MockUnpaidOrdersCanceller{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelUnpaidOrdersCommand) bool {
		return cmd.Now().Equal(testNow) && cmd.Deadline().Equal(testNow.Add(-15*time.Minute))
	})).Return(commands.SweepResult{Candidates: 2, Applied: 1, Skipped: 1}, nil).Once()

	m := metrics.New()
	job := jobs.NewUnpaidOrderSweepJob(
		"@every 1m", 15*time.Minute, time.UTC, handler, kernel.NewFixedClock(testNow), m, discardLogger(),
	)

	job.Run(context.Background())

	handler.AssertExpectations(t)
	expected := `
# HELP foodorder_sweep_orders_total Orders handled by reaper sweeps by outcome.
# TYPE foodorder_sweep_orders_total counter
foodorder_sweep_orders_total{outcome="applied",sweep="unpaid_order_sweep"} 1
foodorder_sweep_orders_total{outcome="failed",sweep="unpaid_order_sweep"} 0
foodorder_sweep_orders_total{outcome="skipped",sweep="unpaid_order_sweep"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "foodorder_sweep_orders_total"))
}

func TestStuckDeliverySweepJob_Run_HandlerErrorIsNotFatal(t *testing.T) {
	handler := &MockStuckDeliveriesCompleter{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteStuckDeliveriesCommand) bool {
		return cmd.Deadline().Equal(testNow.Add(-120 * time.Minute))
	})).Return(commands.SweepResult{}, errors.New("db down")).Once()

	job := jobs.NewStuckDeliverySweepJob(
		"0 0 2 * * *", 120*time.Minute, time.UTC, handler, kernel.NewFixedClock(testNow), metrics.New(), discardLogger(),
	)

	assert.NotPanics(t, func() { job.Run(context.Background()) })
	handler.AssertExpectations(t)
}

func TestSweepJob_Start_InvalidSpec(t *testing.T) {
	job := jobs.NewUnpaidOrderSweepJob(
		"not a cron spec", time.Minute, time.UTC, &MockUnpaidOrdersCanceller{},
		kernel.SystemClock{}, metrics.New(), discardLogger(),
	)

	assert.Error(t, job.Start())
}

func TestJobManager_StartAll_RunsOnSchedule(t *testing.T) {
	fired := make(chan struct{}, 1)
	unpaid := &MockUnpaidOrdersCanceller{}
	unpaid.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case fired <- struct{}{}:
			default:
			}
		}).
		Return(commands.SweepResult{}, nil)
	stuck := &MockStuckDeliveriesCompleter{}

	manager := jobs.NewJobManager(
		jobs.Schedule{
			UnpaidSweepSpec:   "* * * * * *",
			UnpaidTimeout:     15 * time.Minute,
			StuckDeliverySpec: "0 0 2 * * *",
			StuckTimeout:      120 * time.Minute,
			Location:          time.UTC,
		},
		unpaid, stuck, kernel.SystemClock{}, metrics.New(), discardLogger(),
	)

	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("unpaid order sweep did not run")
	}
	stuck.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAll_InvalidStuckSpec(t *testing.T) {
	manager := jobs.NewJobManager(
		jobs.Schedule{
			UnpaidSweepSpec:   "@every 1m",
			UnpaidTimeout:     15 * time.Minute,
			StuckDeliverySpec: "every day at two",
			StuckTimeout:      120 * time.Minute,
		},
		&MockUnpaidOrdersCanceller{}, &MockStuckDeliveriesCompleter{},
		kernel.SystemClock{}, metrics.New(), discardLogger(),
	)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stuck delivery sweep")
}
