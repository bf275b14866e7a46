package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetShopStatusQueryIsNotConstructed = errors.New(
	"GetShopStatusQuery must be created via NewGetShopStatusQuery constructor",
)

type GetShopStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShopStatusQuery() GetShopStatusQuery {
	return GetShopStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShopStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShopStatusQueryIsNotConstructed)
}
