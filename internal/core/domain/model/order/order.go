package order

import (
	"errors"
	"slices"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	DefaultCustomerCancelReason = "cancelled by customer"
	PaymentTimeoutCancelReason  = "payment timeout, order cancelled automatically"
)

// Order is a customer's submitted purchase. Its amount is fixed at submission
// as the sum of the line subtotals.
//
// The aggregate is read-only: transition methods validate the current status
// and return a Patch for the store to apply conditionally.
type Order struct {
	id         int64
	number     string
	customerID int64
	status     Status
	payStatus  PayStatus
	amount     kernel.Money
	address    DeliveryAddress
	lines      []Line

	orderTime       time.Time
	checkoutTime    *time.Time
	deliveryTime    *time.Time
	cancelTime      *time.Time
	cancelReason    string
	rejectionReason string

	isConstructed bool
}

// NewOrder creates an unpaid order awaiting payment.
func NewOrder(
	number string,
	customerID int64,
	address DeliveryAddress,
	lines []Line,
	orderTime time.Time,
) (*Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if customerID <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("customerId", customerID, 1, "max int64")
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	amount := kernel.ZeroMoney()
	for _, l := range lines {
		amount = amount.Add(l.Subtotal())
	}

	return &Order{
		number:        number,
		customerID:    customerID,
		status:        PendingPayment,
		payStatus:     Unpaid,
		amount:        amount,
		address:       address,
		lines:         slices.Clone(lines),
		orderTime:     orderTime,
		isConstructed: true,
	}, nil
}

// State carries every persisted attribute of an order for RestoreOrder.
type State struct {
	ID              int64
	Number          string
	CustomerID      int64
	Status          Status
	PayStatus       PayStatus
	Amount          kernel.Money
	Address         DeliveryAddress
	Lines           []Line
	OrderTime       time.Time
	CheckoutTime    *time.Time
	DeliveryTime    *time.Time
	CancelTime      *time.Time
	CancelReason    string
	RejectionReason string
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(s.Status.Validate(), s.PayStatus.Validate()); err != nil {
		return nil, err
	}
	if s.ID <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", s.ID, 1, "max int64")
	}
	return &Order{
		id:              s.ID,
		number:          s.Number,
		customerID:      s.CustomerID,
		status:          s.Status,
		payStatus:       s.PayStatus,
		amount:          s.Amount,
		address:         s.Address,
		lines:           slices.Clone(s.Lines),
		orderTime:       s.OrderTime,
		checkoutTime:    s.CheckoutTime,
		deliveryTime:    s.DeliveryTime,
		cancelTime:      s.CancelTime,
		cancelReason:    s.CancelReason,
		rejectionReason: s.RejectionReason,
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64                 { return o.id }
func (o *Order) Number() string            { return o.number }
func (o *Order) CustomerID() int64         { return o.customerID }
func (o *Order) Status() Status            { return o.status }
func (o *Order) PayStatus() PayStatus      { return o.payStatus }
func (o *Order) Amount() kernel.Money      { return o.amount }
func (o *Order) Address() DeliveryAddress  { return o.address }
func (o *Order) Lines() []Line             { return slices.Clone(o.lines) }
func (o *Order) OrderTime() time.Time      { return o.orderTime }
func (o *Order) CheckoutTime() *time.Time  { return o.checkoutTime }
func (o *Order) DeliveryTime() *time.Time  { return o.deliveryTime }
func (o *Order) CancelTime() *time.Time    { return o.cancelTime }
func (o *Order) CancelReason() string      { return o.cancelReason }
func (o *Order) RejectionReason() string   { return o.rejectionReason }

func (o *Order) BelongsTo(customerID int64) bool {
	return o.customerID == customerID
}

// MarkPaid records the external payment confirmation.
func (o *Order) MarkPaid(at time.Time) (Patch, error) {
	next, err := o.status.Pay()
	if err != nil {
		return Patch{}, err
	}
	return newPatch(o.id, "pay", next, o.status).
		withPayStatus(Paid).
		withCheckoutTime(at), nil
}

func (o *Order) Confirm() (Patch, error) {
	next, err := o.status.Confirm()
	if err != nil {
		return Patch{}, err
	}
	return newPatch(o.id, "confirm", next, o.status), nil
}

// Reject is the shop declining a paid order; the payment is always refunded.
func (o *Order) Reject(reason string, at time.Time) (Patch, error) {
	next, err := o.status.Reject()
	if err != nil {
		return Patch{}, err
	}
	if reason == "" {
		return Patch{}, errs.NewValueIsRequiredError("rejection reason")
	}
	return newPatch(o.id, "reject", next, o.status).
		withPayStatus(Refunded).
		withRejection(reason, at), nil
}

func (o *Order) CancelByCustomer(reason string, at time.Time) (Patch, error) {
	if reason == "" {
		reason = DefaultCustomerCancelReason
	}
	next, err := o.status.CancelByCustomer()
	if err != nil {
		return Patch{}, err
	}
	return o.cancellation(next, reason, at), nil
}

func (o *Order) CancelByStaff(reason string, at time.Time) (Patch, error) {
	next, err := o.status.CancelByStaff()
	if err != nil {
		return Patch{}, err
	}
	if reason == "" {
		return Patch{}, errs.NewValueIsRequiredError("cancel reason")
	}
	return o.cancellation(next, reason, at), nil
}

// CancelUnpaid cancels an order whose payment never arrived.
func (o *Order) CancelUnpaid(reason string, at time.Time) (Patch, error) {
	next, err := o.status.CancelUnpaid()
	if err != nil {
		return Patch{}, err
	}
	return o.cancellation(next, reason, at), nil
}

func (o *Order) Deliver() (Patch, error) {
	next, err := o.status.Deliver()
	if err != nil {
		return Patch{}, err
	}
	return newPatch(o.id, "deliver", next, o.status), nil
}

func (o *Order) Complete(at time.Time) (Patch, error) {
	next, err := o.status.Complete()
	if err != nil {
		return Patch{}, err
	}
	return newPatch(o.id, "complete", next, o.status).withDeliveryTime(at), nil
}

// ForceComplete closes a delivery that has been in progress for too long.
// It is only guarded by the order still being out for delivery.
func (o *Order) ForceComplete(at time.Time) (Patch, error) {
	if o.status != DeliveryInProgress {
		return Patch{}, errs.NewInvalidOrderStatusError("force complete", o.status.String())
	}
	return newPatch(o.id, "force complete", Completed, DeliveryInProgress).withDeliveryTime(at), nil
}

// cancellation refunds iff the stored row says the order was paid.
func (o *Order) cancellation(next Status, reason string, at time.Time) Patch {
	p := newPatch(o.id, "cancel", next, o.status).withCancellation(reason, at)
	if o.payStatus == Paid {
		p = p.withPayStatus(Refunded)
	}
	return p
}
