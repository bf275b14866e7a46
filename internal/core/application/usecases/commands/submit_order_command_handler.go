package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// SubmitOrderResult describes the order created by a checkout.
type SubmitOrderResult struct {
	ID        int64
	Number    string
	Amount    kernel.Money
	OrderTime time.Time
}

// SubmitOrderCommandHandler converts a cart into a PendingPayment order.
//
// The order row, its lines and the cart deletion share one transaction, and
// the cart rows are locked for its duration: either the order exists with every
// line and the cart is empty, or nothing changed.
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
	addresses  ports.AddressReader
	shop       ports.ShopStatusRepository
	assembler  services.CheckoutAssembler
	clock      kernel.Clock
}

func NewSubmitOrderCommandHandler(
	uowFactory UoWFactory,
	addresses ports.AddressReader,
	shop ports.ShopStatusRepository,
	assembler services.CheckoutAssembler,
	clock kernel.Clock,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		addresses:  addresses,
		shop:       shop,
		assembler:  assembler,
		clock:      clock,
	}
}

func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	address, err := h.deliveryAddress(ctx, cmd)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	open, err := h.shop.IsOpen(ctx)
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if !open {
		return SubmitOrderResult{}, errs.NewBusinessRuleViolationError("shop is closed")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.CartRepository().LockByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	aggregate, err := h.assembler.Assemble(cmd.CustomerID(), address, items, h.clock.Now())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if expected, ok := cmd.ExpectedAmount(); ok && !expected.IsEqual(aggregate.Amount()) {
		return SubmitOrderResult{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("cart totals %s, client expected %s", aggregate.Amount(), expected),
		)
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if err = orderRepo.AddLines(ctx, id, aggregate.Lines()); err != nil {
		return SubmitOrderResult{}, err
	}
	// Only the locked rows were converted; items added since then stay in the cart.
	if err = uow.CartRepository().DeleteByIDs(ctx, cmd.CustomerID(), itemIDs(items)); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		ID:        id,
		Number:    aggregate.Number(),
		Amount:    aggregate.Amount(),
		OrderTime: aggregate.OrderTime(),
	}, nil
}

func (h SubmitOrderCommandHandler) deliveryAddress(ctx context.Context, cmd SubmitOrderCommand) (order.DeliveryAddress, error) {
	entry, err := h.addresses.Get(ctx, cmd.AddressID())
	if err != nil {
		return order.DeliveryAddress{}, err
	}
	if entry.CustomerID != cmd.CustomerID() {
		return order.DeliveryAddress{}, errs.NewObjectNotFoundError("addressBookId", cmd.AddressID())
	}
	return order.NewDeliveryAddress(entry.Consignee, entry.Phone, entry.FullText())
}

func itemIDs(items []*cart.Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID())
	}
	return ids
}
