// Package cart models a customer's shopping cart items.
package cart

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ProductSnapshot is the catalog view of a product at the moment it is added.
type ProductSnapshot struct {
	Name  string
	Image string
	Price kernel.Money
}

// Item is one product line in a customer's cart. Two items of the same customer
// never share a product identity (product id plus flavor).
type Item struct {
	id         int64
	customerID int64
	product    kernel.ProductRef
	snapshot   ProductSnapshot
	quantity   int
	createdAt  time.Time

	isConstructed bool
}

func NewItem(
	customerID int64,
	product kernel.ProductRef,
	snapshot ProductSnapshot,
	quantity int,
	createdAt time.Time,
) (*Item, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("customerId", customerID, 1, "max int64")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if snapshot.Name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return &Item{
		customerID:    customerID,
		product:       product,
		snapshot:      snapshot,
		quantity:      quantity,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func RestoreItem(
	id, customerID int64,
	product kernel.ProductRef,
	snapshot ProductSnapshot,
	quantity int,
	createdAt time.Time,
) (*Item, error) {
	item, err := NewItem(customerID, product, snapshot, quantity, createdAt)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64                  { return i.id }
func (i *Item) CustomerID() int64          { return i.customerID }
func (i *Item) Product() kernel.ProductRef { return i.product }
func (i *Item) Snapshot() ProductSnapshot  { return i.snapshot }
func (i *Item) Quantity() int              { return i.quantity }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }

func (i *Item) Matches(product kernel.ProductRef) bool {
	return i.product.IsEqual(product)
}

// Increase adds n units of the same product.
func (i *Item) Increase(n int) error {
	if n <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", n, 1, "unbounded")
	}
	i.quantity += n
	return nil
}

// Decrease removes one unit and reports whether the item is now empty and
// must be deleted instead of updated.
func (i *Item) Decrease() (empty bool) {
	if i.quantity <= 1 {
		i.quantity = 0
		return true
	}
	i.quantity--
	return false
}
