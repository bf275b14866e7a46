package commands

import (
	"context"

	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// RemindOrderCommandHandler forwards a customer reminder to staff sessions.
// Nothing is written.
type RemindOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewRemindOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RemindOrderCommandHandler {
	return RemindOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h RemindOrderCommandHandler) Handle(ctx context.Context, cmd RemindOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.BelongsTo(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	h.notifier.Notify(ctx, notification.NewReminderEvent(aggregate.ID(), aggregate.Number()))
	return nil
}
