package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CompleteStuckDeliveriesCommandHandler is the daily failsafe that closes
// deliveries nobody completed. The delivery time is set to the sweep time.
type CompleteStuckDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCompleteStuckDeliveriesCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CompleteStuckDeliveriesCommandHandler {
	return CompleteStuckDeliveriesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "stuck_delivery_sweep"),
	}
}

func (h CompleteStuckDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteStuckDeliveriesCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	candidates, err := h.uowFactory.Create().OrderRepository().
		FindByStatusOlderThan(ctx, order.DeliveryInProgress, cmd.Deadline())
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Candidates: len(candidates)}
	for _, candidate := range candidates {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		err = runTransition(ctx, h.uowFactory, candidate.ID(), func(o *order.Order) (order.Patch, error) {
			return o.ForceComplete(cmd.Now())
		})
		result.record(err)

		switch {
		case err == nil:
			h.logger.Info("stuck delivery completed", "order_id", candidate.ID(), "number", candidate.Number())
		case errors.Is(err, errs.ErrInvalidOrderStatus):
			h.logger.Debug("stuck delivery already moved on", "order_id", candidate.ID(), "reason", err)
		default:
			h.logger.Error("failed to complete stuck delivery", "order_id", candidate.ID(), "error", err)
		}
	}

	return result, nil
}
