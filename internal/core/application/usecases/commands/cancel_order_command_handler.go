package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer self-service cancellation.
// Only PendingPayment and ToBeConfirmed orders qualify; a paid order is refunded.
// Orders of other customers are reported as not found.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		if !o.BelongsTo(cmd.CustomerID()) {
			return order.Patch{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
		}
		return o.CancelByCustomer(cmd.Reason(), h.clock.Now())
	})
}
