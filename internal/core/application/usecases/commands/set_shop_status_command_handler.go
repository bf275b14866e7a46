package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// SetShopStatusCommandHandler opens or closes the shop for new orders.
type SetShopStatusCommandHandler struct {
	shop ports.ShopStatusRepository
}

func NewSetShopStatusCommandHandler(shop ports.ShopStatusRepository) SetShopStatusCommandHandler {
	return SetShopStatusCommandHandler{shop: shop}
}

func (h SetShopStatusCommandHandler) Handle(ctx context.Context, cmd SetShopStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.shop.SetOpen(ctx, cmd.Open())
}
