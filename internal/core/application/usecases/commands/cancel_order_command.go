package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a customer cancelling their own order. An empty reason
// falls back to order.DefaultCustomerCancelReason.
type CancelOrderCommand struct {
	customerID int64
	orderID    int64
	reason     string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(customerID, orderID int64, reason string) (CancelOrderCommand, error) {
	if err := errors.Join(
		validateID("customerId", customerID),
		validateID("orderId", orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		reason:     strings.TrimSpace(reason),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) CustomerID() int64 { return c.customerID }
func (c CancelOrderCommand) OrderID() int64    { return c.orderID }
func (c CancelOrderCommand) Reason() string    { return c.reason }
