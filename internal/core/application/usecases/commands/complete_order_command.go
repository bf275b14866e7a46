package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

type CompleteOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID int64) (CompleteOrderCommand, error) {
	if err := validateID("orderId", orderID); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}
