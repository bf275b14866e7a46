package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrRemindOrderCommandIsNotConstructed = errors.New(
	"RemindOrderCommand must be created via NewRemindOrderCommand constructor",
)

// RemindOrderCommand is a customer nudging staff about their order.
type RemindOrderCommand struct {
	customerID int64
	orderID    int64

	guard guard.ConstructorGuard
}

func NewRemindOrderCommand(customerID, orderID int64) (RemindOrderCommand, error) {
	if err := errors.Join(
		validateID("customerId", customerID),
		validateID("orderId", orderID),
	); err != nil {
		return RemindOrderCommand{}, err
	}
	return RemindOrderCommand{customerID: customerID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemindOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemindOrderCommandIsNotConstructed)
}

func (c RemindOrderCommand) CustomerID() int64 { return c.customerID }
func (c RemindOrderCommand) OrderID() int64    { return c.orderID }
