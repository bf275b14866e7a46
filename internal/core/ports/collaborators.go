package ports

import (
	"context"
	"strings"

	"foodorder/internal/core/domain/model/cart"
)

// Address is an address book entry owned by the account collaborator.
type Address struct {
	ID         int64
	CustomerID int64
	Consignee  string
	Phone      string
	Province   string
	City       string
	District   string
	Detail     string
}

// FullText joins the address parts the way it is printed on the order.
func (a Address) FullText() string {
	return strings.Join([]string{a.Province, a.City, a.District, a.Detail}, "")
}

// AddressReader reads the address book.
type AddressReader interface {
	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id int64) (Address, error)
}

// CatalogReader reads current dish and set meal data from the catalog collaborator.
type CatalogReader interface {
	Dish(ctx context.Context, id int64) (cart.ProductSnapshot, error)
	Setmeal(ctx context.Context, id int64) (cart.ProductSnapshot, error)
}

// ShopStatusRepository stores whether the shop takes orders.
type ShopStatusRepository interface {
	// IsOpen reports true when no status was ever set.
	IsOpen(ctx context.Context) (bool, error)
	SetOpen(ctx context.Context, open bool) error
}
