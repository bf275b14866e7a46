package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves a ToBeConfirmed order to Confirmed.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		return o.Confirm()
	})
}
