package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// MarkPaidCommandHandler records a payment and alerts staff about the new order.
//
// The call is idempotent: an order that already left PendingPayment, or that
// another call moved first, is left untouched and no notification is sent.
// An unknown number is returned as errs.ErrObjectNotFound.
type MarkPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	clock      kernel.Clock
}

func NewMarkPaidCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier, clock kernel.Clock) MarkPaidCommandHandler {
	return MarkPaidCommandHandler{uowFactory: uowFactory, notifier: notifier, clock: clock}
}

func (h MarkPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.PendingPayment {
		return nil
	}

	patch, err := aggregate.MarkPaid(h.clock.Now())
	if err != nil {
		return err
	}

	applied, err := repo.Apply(ctx, patch)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if applied {
		h.notifier.Notify(ctx, notification.NewOrderPaidEvent(aggregate.ID(), aggregate.Number()))
	}
	return nil
}
