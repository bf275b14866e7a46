package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListCartQueryIsNotConstructed = errors.New("ListCartQuery must be created via NewListCartQuery constructor")

type ListCartQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewListCartQuery(customerID int64) (ListCartQuery, error) {
	if customerID <= 0 {
		return ListCartQuery{}, errs.NewValueIsOutOfRangeError("customerId", customerID, 1, "max int64")
	}
	return ListCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCartQuery) Validate() error {
	return q.guard.Validate(ErrListCartQueryIsNotConstructed)
}

func (q ListCartQuery) CustomerID() int64 { return q.customerID }

type CartItemView struct {
	ID         int64        `json:"id"`
	DishID     *int64       `json:"dishId,omitempty"`
	SetmealID  *int64       `json:"setmealId,omitempty"`
	DishFlavor string       `json:"dishFlavor,omitempty"`
	Name       string       `json:"name"`
	Image      string       `json:"image"`
	Price      kernel.Money `json:"amount"`
	Quantity   int          `json:"number"`
	CreatedAt  time.Time    `json:"createTime"`
}
