package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is the shop accepting a paid order.
type ConfirmOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(orderID int64) (ConfirmOrderCommand, error) {
	if err := validateID("orderId", orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() int64 {
	return c.orderID
}
