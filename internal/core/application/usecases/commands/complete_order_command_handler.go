package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler marks a delivered order as completed and stamps the delivery time.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		return o.Complete(h.clock.Now())
	})
}
