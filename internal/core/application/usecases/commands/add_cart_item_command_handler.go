package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// AddCartItemCommandHandler adds one unit of a product to the cart. An item
// with the same product identity is incremented; otherwise the catalog is read
// and its current name, image and price are captured on a new item.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogReader
	clock      kernel.Clock
}

func NewAddCartItemCommandHandler(
	uowFactory CartUoWFactory,
	catalog ports.CatalogReader,
	clock kernel.Clock,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, catalog: catalog, clock: clock}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd CartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	item, err := repo.FindMatching(ctx, cmd.CustomerID(), cmd.Product())
	switch {
	case err == nil:
		if err = item.Increase(1); err != nil {
			return err
		}
		if err = repo.UpdateQuantity(ctx, item); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		snapshot, err := h.snapshot(ctx, cmd.Product())
		if err != nil {
			return err
		}
		item, err = cart.NewItem(cmd.CustomerID(), cmd.Product(), snapshot, 1, h.clock.Now())
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, item); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}

func (h AddCartItemCommandHandler) snapshot(ctx context.Context, product kernel.ProductRef) (cart.ProductSnapshot, error) {
	if product.IsDish() {
		return h.catalog.Dish(ctx, *product.DishID())
	}
	return h.catalog.Setmeal(ctx, *product.SetmealID())
}
