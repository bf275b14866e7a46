package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart items.
type CartRepository interface {
	// Add and AddBatch merge into an existing item of the same product identity
	// by summing quantities, so concurrent adds never duplicate a product.
	Add(ctx context.Context, item *cart.Item) error
	AddBatch(ctx context.Context, items []*cart.Item) error

	UpdateQuantity(ctx context.Context, item *cart.Item) error

	Delete(ctx context.Context, id int64) error

	// DeleteByCustomer removes the whole cart of the customer.
	DeleteByCustomer(ctx context.Context, customerID int64) error

	// DeleteByIDs removes exactly the listed items of the customer. Checkout uses
	// it so items added after the cart was locked survive.
	DeleteByIDs(ctx context.Context, customerID int64, ids []int64) error

	// FindMatching returns the item with the same product identity, or
	// errs.ErrObjectNotFound. Inside a transaction the row stays locked, so
	// concurrent quantity changes of one item serialize.
	FindMatching(ctx context.Context, customerID int64, product kernel.ProductRef) (*cart.Item, error)

	ListByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error)

	// LockByCustomer lists the cart like ListByCustomer and row-locks it until the
	// transaction ends, so two checkouts of the same cart serialize.
	LockByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error)
}
