package services

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CheckoutAssembler maps cart items field by field onto order lines.
type CheckoutAssembler struct {
	numbers *NumberGenerator
}

func NewCheckoutAssembler(numbers *NumberGenerator) CheckoutAssembler {
	return CheckoutAssembler{numbers: numbers}
}

// Assemble builds a PendingPayment order from the customer's cart. Items owned
// by another customer are rejected.
func (a CheckoutAssembler) Assemble(
	customerID int64,
	address order.DeliveryAddress,
	items []*cart.Item,
	now time.Time,
) (*order.Order, error) {
	if len(items) == 0 {
		return nil, errs.ErrEmptyCart
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.CustomerID() != customerID {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"cart item",
				errors.New("item belongs to another customer"),
			)
		}
		line, err := lineFromCartItem(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(a.numbers.Next(now), customerID, address, lines, now)
}

func lineFromCartItem(item *cart.Item) (order.Line, error) {
	snap := item.Snapshot()
	return order.NewLine(item.Product(), snap.Name, snap.Image, snap.Price, item.Quantity())
}
