package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// RejectOrderCommandHandler cancels a ToBeConfirmed order on behalf of the shop
// and refunds its payment.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		return o.Reject(cmd.Reason(), h.clock.Now())
	})
}
