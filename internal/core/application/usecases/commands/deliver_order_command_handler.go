package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler hands a Confirmed order to delivery.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		return o.Deliver()
	})
}
