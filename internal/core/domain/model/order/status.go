package order

import (
	"fmt"
	"slices"

	"foodorder/internal/pkg/errs"
)

// Status is the lifecycle stage of an order. The numeric values are a storage
// contract shared with the reporting side and must not change.
type Status int

const (
	Unknown Status = iota
	PendingPayment
	ToBeConfirmed
	Confirmed
	DeliveryInProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		PendingPayment:     "PendingPayment",
		ToBeConfirmed:      "ToBeConfirmed",
		Confirmed:          "Confirmed",
		DeliveryInProgress: "DeliveryInProgress",
		Completed:          "Completed",
		Cancelled:          "Cancelled",
	}
}

func (s Status) Validate() error {
	if s < PendingPayment || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Pay moves an unpaid order into the shop's confirmation queue.
func (s Status) Pay() (Status, error) {
	return s.transit("pay", ToBeConfirmed, PendingPayment)
}

func (s Status) Confirm() (Status, error) {
	return s.transit("confirm", Confirmed, ToBeConfirmed)
}

func (s Status) Reject() (Status, error) {
	return s.transit("reject", Cancelled, ToBeConfirmed)
}

// CancelByCustomer allows self-service cancellation before acceptance only.
// An accepted order that is still active returns a business rule violation
// that also matches errs.ErrInvalidOrderStatus.
func (s Status) CancelByCustomer() (Status, error) {
	next, err := s.transit("cancel", Cancelled, CustomerCancellableStatuses()...)
	if err != nil && !s.IsTerminal() && s.Validate() == nil {
		return 0, errs.NewBusinessRuleViolationErrorWithCause("accepted orders can only be cancelled by the shop", err)
	}
	return next, err
}

func (s Status) CancelByStaff() (Status, error) {
	return s.transit("cancel", Cancelled, StaffCancellableStatuses()...)
}

// CancelUnpaid is the staff cancellation restricted to orders that never got paid.
func (s Status) CancelUnpaid() (Status, error) {
	return s.transit("cancel unpaid", Cancelled, PendingPayment)
}

func (s Status) Deliver() (Status, error) {
	return s.transit("deliver", DeliveryInProgress, Confirmed)
}

func (s Status) Complete() (Status, error) {
	return s.transit("complete", Completed, DeliveryInProgress)
}

func CustomerCancellableStatuses() []Status {
	return []Status{PendingPayment, ToBeConfirmed}
}

func StaffCancellableStatuses() []Status {
	return []Status{PendingPayment, ToBeConfirmed, Confirmed, DeliveryInProgress}
}

func (s Status) transit(operation string, to Status, from ...Status) (Status, error) {
	if !slices.Contains(from, s) {
		return 0, errs.NewInvalidOrderStatusError(operation, s.String())
	}
	return to, nil
}
