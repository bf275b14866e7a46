package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

type DeliverOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID int64) (DeliverOrderCommand, error) {
	if err := validateID("orderId", orderID); err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}
