package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ReorderCommandHandler merges a past order into the current cart. Lines
// matching an item already in the cart increase its quantity; the rest become
// new items stamped with the current time. The order itself is not modified.
type ReorderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewReorderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ReorderCommandHandler {
	return ReorderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) error {
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

	source, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !source.BelongsTo(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	cartRepo := uow.CartRepository()
	existing, err := cartRepo.LockByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	var fresh []*cart.Item
	for _, line := range source.Lines() {
		if item := matchingItem(existing, line.Product()); item != nil {
			if err = item.Increase(line.Quantity()); err != nil {
				return err
			}
			if err = cartRepo.UpdateQuantity(ctx, item); err != nil {
				return err
			}
			continue
		}
		if item := matchingItem(fresh, line.Product()); item != nil {
			if err = item.Increase(line.Quantity()); err != nil {
				return err
			}
			continue
		}

		item, err := cartItemFromLine(cmd.CustomerID(), line, now)
		if err != nil {
			return err
		}
		fresh = append(fresh, item)
	}

	if len(fresh) > 0 {
		if err = cartRepo.AddBatch(ctx, fresh); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func matchingItem(items []*cart.Item, product kernel.ProductRef) *cart.Item {
	for _, item := range items {
		if item.Matches(product) {
			return item
		}
	}
	return nil
}

func cartItemFromLine(customerID int64, line order.Line, now time.Time) (*cart.Item, error) {
	snapshot := cart.ProductSnapshot{Name: line.Name(), Image: line.Image(), Price: line.UnitPrice()}
	return cart.NewItem(customerID, line.Product(), snapshot, line.Quantity(), now)
}
