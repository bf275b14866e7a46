package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrSetShopStatusCommandIsNotConstructed = errors.New(
	"SetShopStatusCommand must be created via NewSetShopStatusCommand constructor",
)

type SetShopStatusCommand struct {
	open bool

	guard guard.ConstructorGuard
}

func NewSetShopStatusCommand(open bool) SetShopStatusCommand {
	return SetShopStatusCommand{open: open, guard: guard.NewConstructorGuard()}
}

func (c SetShopStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetShopStatusCommandIsNotConstructed)
}

func (c SetShopStatusCommand) Open() bool {
	return c.open
}
