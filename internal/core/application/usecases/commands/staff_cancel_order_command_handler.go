package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// StaffCancelHandler is the contract the unpaid-order sweep uses to cancel orders.
type StaffCancelHandler interface {
	Handle(ctx context.Context, cmd StaffCancelOrderCommand) error
}

// StaffCancelOrderCommandHandler cancels any non-terminal order and refunds it
// when the stored row says it was paid.
type StaffCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewStaffCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) StaffCancelOrderCommandHandler {
	return StaffCancelOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h StaffCancelOrderCommandHandler) Handle(ctx context.Context, cmd StaffCancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (order.Patch, error) {
		if cmd.UnpaidOnly() {
			return o.CancelUnpaid(cmd.Reason(), h.clock.Now())
		}
		return o.CancelByStaff(cmd.Reason(), h.clock.Now())
	})
}
