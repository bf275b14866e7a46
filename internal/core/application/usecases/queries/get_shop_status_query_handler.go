package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

type GetShopStatusQueryHandler struct {
	shop ports.ShopStatusRepository
}

func NewGetShopStatusQueryHandler(shop ports.ShopStatusRepository) GetShopStatusQueryHandler {
	return GetShopStatusQueryHandler{shop: shop}
}

// Handle reports whether the shop currently takes orders.
func (h GetShopStatusQueryHandler) Handle(ctx context.Context, query GetShopStatusQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}
	return h.shop.IsOpen(ctx)
}
