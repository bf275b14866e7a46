package order

import (
	"slices"
	"time"
)

// Patch is the set of columns one transition changes, plus the statuses the
// order must still be in for the change to apply. It is built by the Order
// transition methods and is never modified afterwards.
type Patch struct {
	orderID   int64
	operation string
	from      []Status
	status    Status

	payStatus       *PayStatus
	checkoutTime    *time.Time
	deliveryTime    *time.Time
	cancelTime      *time.Time
	cancelReason    *string
	rejectionReason *string
}

func newPatch(orderID int64, operation string, to Status, from ...Status) Patch {
	return Patch{
		orderID:   orderID,
		operation: operation,
		from:      slices.Clone(from),
		status:    to,
	}
}

func (p Patch) OrderID() int64 {
	return p.orderID
}

// Operation names the transition, e.g. "pay" or "reject".
func (p Patch) Operation() string {
	return p.operation
}

// ExpectedStatuses lists the statuses the stored order must have for the patch to apply.
func (p Patch) ExpectedStatuses() []Status {
	return slices.Clone(p.from)
}

// Status is the target status.
func (p Patch) Status() Status {
	return p.status
}

func (p Patch) PayStatus() (PayStatus, bool) {
	if p.payStatus == nil {
		return 0, false
	}
	return *p.payStatus, true
}

func (p Patch) CheckoutTime() (time.Time, bool) {
	return deref(p.checkoutTime)
}

func (p Patch) DeliveryTime() (time.Time, bool) {
	return deref(p.deliveryTime)
}

func (p Patch) CancelTime() (time.Time, bool) {
	return deref(p.cancelTime)
}

func (p Patch) CancelReason() (string, bool) {
	return deref(p.cancelReason)
}

func (p Patch) RejectionReason() (string, bool) {
	return deref(p.rejectionReason)
}

func (p Patch) withPayStatus(s PayStatus) Patch {
	p.payStatus = &s
	return p
}

func (p Patch) withCheckoutTime(t time.Time) Patch {
	p.checkoutTime = &t
	return p
}

func (p Patch) withDeliveryTime(t time.Time) Patch {
	p.deliveryTime = &t
	return p
}

func (p Patch) withCancellation(reason string, at time.Time) Patch {
	p.cancelReason = &reason
	p.cancelTime = &at
	return p
}

func (p Patch) withRejection(reason string, at time.Time) Patch {
	p.rejectionReason = &reason
	p.cancelTime = &at
	return p
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
