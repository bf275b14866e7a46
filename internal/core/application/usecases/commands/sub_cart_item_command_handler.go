package commands

import (
	"context"
)

// SubCartItemCommandHandler removes one unit of a product from the cart and
// deletes the item when its last unit goes.
type SubCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewSubCartItemCommandHandler(uowFactory CartUoWFactory) SubCartItemCommandHandler {
	return SubCartItemCommandHandler{uowFactory: uowFactory}
}

func (h SubCartItemCommandHandler) Handle(ctx context.Context, cmd CartItemCommand) error {
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
	if err != nil {
		return err
	}

	if item.Decrease() {
		err = repo.Delete(ctx, item.ID())
	} else {
		err = repo.UpdateQuantity(ctx, item)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
