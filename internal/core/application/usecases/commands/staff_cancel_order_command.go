package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrStaffCancelOrderCommandIsNotConstructed = errors.New(
	"StaffCancelOrderCommand must be created via NewStaffCancelOrderCommand constructor",
)

// StaffCancelOrderCommand cancels any active order on behalf of the shop.
type StaffCancelOrderCommand struct {
	orderID    int64
	reason     string
	unpaidOnly bool

	guard guard.ConstructorGuard
}

func NewStaffCancelOrderCommand(orderID int64, reason string) (StaffCancelOrderCommand, error) {
	reason = strings.TrimSpace(reason)
	if err := validateID("orderId", orderID); err != nil {
		return StaffCancelOrderCommand{}, err
	}
	if reason == "" {
		return StaffCancelOrderCommand{}, errs.NewValueIsRequiredError("cancelReason")
	}
	return StaffCancelOrderCommand{orderID: orderID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

// NewPaymentTimeoutCancelCommand is the staff cancellation issued by the unpaid
// order sweep. It only applies while the order is still PendingPayment.
func NewPaymentTimeoutCancelCommand(orderID int64) (StaffCancelOrderCommand, error) {
	cmd, err := NewStaffCancelOrderCommand(orderID, order.PaymentTimeoutCancelReason)
	if err != nil {
		return StaffCancelOrderCommand{}, err
	}
	cmd.unpaidOnly = true
	return cmd, nil
}

func (c StaffCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrStaffCancelOrderCommandIsNotConstructed)
}

func (c StaffCancelOrderCommand) OrderID() int64   { return c.orderID }
func (c StaffCancelOrderCommand) Reason() string   { return c.reason }
func (c StaffCancelOrderCommand) UnpaidOnly() bool { return c.unpaidOnly }
