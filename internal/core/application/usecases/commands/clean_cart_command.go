package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrCleanCartCommandIsNotConstructed = errors.New(
	"CleanCartCommand must be created via NewCleanCartCommand constructor",
)

type CleanCartCommand struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewCleanCartCommand(customerID int64) (CleanCartCommand, error) {
	if err := validateID("customerId", customerID); err != nil {
		return CleanCartCommand{}, err
	}
	return CleanCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c CleanCartCommand) Validate() error {
	return c.guard.Validate(ErrCleanCartCommandIsNotConstructed)
}

func (c CleanCartCommand) CustomerID() int64 {
	return c.customerID
}
