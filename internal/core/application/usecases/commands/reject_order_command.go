package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand is the shop declining an order that awaits confirmation.
type RejectOrderCommand struct {
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID int64, reason string) (RejectOrderCommand, error) {
	reason = strings.TrimSpace(reason)
	if err := validateID("orderId", orderID); err != nil {
		return RejectOrderCommand{}, err
	}
	if reason == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("rejectionReason")
	}
	return RejectOrderCommand{orderID: orderID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderID() int64 { return c.orderID }
func (c RejectOrderCommand) Reason() string { return c.reason }
