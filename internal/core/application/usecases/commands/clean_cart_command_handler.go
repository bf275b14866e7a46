package commands

import (
	"context"
)

// CleanCartCommandHandler empties the customer's cart.
type CleanCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewCleanCartCommandHandler(uowFactory CartUoWFactory) CleanCartCommandHandler {
	return CleanCartCommandHandler{uowFactory: uowFactory}
}

func (h CleanCartCommandHandler) Handle(ctx context.Context, cmd CleanCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.uowFactory.Create().CartRepository().DeleteByCustomer(ctx, cmd.CustomerID())
}
