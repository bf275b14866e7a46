package queries

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery loads one order with its lines. The customer variant
// hides orders of other customers behind a not found error.
type GetOrderDetailsQuery struct {
	orderID    int64
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery is the staff variant: any order can be read.
func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsOutOfRangeError("orderId", orderID, 1, "max int64")
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func NewCustomerOrderDetailsQuery(customerID, orderID int64) (GetOrderDetailsQuery, error) {
	if customerID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsOutOfRangeError("customerId", customerID, 1, "max int64")
	}
	q, err := NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return GetOrderDetailsQuery{}, err
	}
	q.customerID = customerID
	return q, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() int64 { return q.orderID }

// CustomerID returns the owner restriction, zero for staff reads.
func (q GetOrderDetailsQuery) CustomerID() int64 { return q.customerID }
