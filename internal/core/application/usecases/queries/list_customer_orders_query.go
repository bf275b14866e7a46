package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery pages through a customer's order history, newest first.
type ListCustomerOrdersQuery struct {
	customerID int64
	status     order.Status
	paging     Paging

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery accepts order.Unknown as "any status".
func NewListCustomerOrdersQuery(customerID int64, status order.Status, page, pageSize int) (ListCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return ListCustomerOrdersQuery{}, errs.NewValueIsOutOfRangeError("customerId", customerID, 1, "max int64")
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListCustomerOrdersQuery{}, err
		}
	}
	paging, err := NewPaging(page, pageSize)
	if err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		paging:     paging,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() int64    { return q.customerID }
func (q ListCustomerOrdersQuery) Status() order.Status { return q.status }
func (q ListCustomerOrdersQuery) Paging() Paging       { return q.paging }
