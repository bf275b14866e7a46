package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CancelUnpaidOrdersCommandHandler runs the unpaid-order sweep. Each candidate
// is cancelled through the staff cancellation path in its own unit of work, so
// one failing order never stops the rest of the batch.
type CancelUnpaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	canceller  StaffCancelHandler
	logger     *slog.Logger
}

func NewCancelUnpaidOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	canceller StaffCancelHandler,
	logger *slog.Logger,
) CancelUnpaidOrdersCommandHandler {
	return CancelUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
		canceller:  canceller,
		logger:     logger.With("component", "unpaid_order_sweep"),
	}
}

func (h CancelUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd CancelUnpaidOrdersCommand) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	candidates, err := h.uowFactory.Create().OrderRepository().
		FindByStatusOlderThan(ctx, order.PendingPayment, cmd.Deadline())
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Candidates: len(candidates)}
	for _, candidate := range candidates {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		err = h.cancel(ctx, candidate.ID())
		result.record(err)

		switch {
		case err == nil:
			h.logger.Info("unpaid order cancelled", "order_id", candidate.ID(), "number", candidate.Number())
		case errors.Is(err, errs.ErrInvalidOrderStatus):
			h.logger.Debug("unpaid order already moved on", "order_id", candidate.ID(), "reason", err)
		default:
			h.logger.Error("failed to cancel unpaid order", "order_id", candidate.ID(), "error", err)
		}
	}

	return result, nil
}

func (h CancelUnpaidOrdersCommandHandler) cancel(ctx context.Context, orderID int64) error {
	cmd, err := NewPaymentTimeoutCancelCommand(orderID)
	if err != nil {
		return err
	}
	return h.canceller.Handle(ctx, cmd)
}
