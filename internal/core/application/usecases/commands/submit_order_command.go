package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand turns the customer's cart into an order delivered to the address.
type SubmitOrderCommand struct {
	customerID     int64
	addressID      int64
	expectedAmount *kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a checkout request. expectedAmount is the total
// the client displayed; nil skips the comparison.
func NewSubmitOrderCommand(customerID, addressID int64, expectedAmount *kernel.Money) (SubmitOrderCommand, error) {
	if err := errors.Join(
		validateID("customerId", customerID),
		validateID("addressBookId", addressID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		customerID:     customerID,
		addressID:      addressID,
		expectedAmount: expectedAmount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) CustomerID() int64 { return c.customerID }
func (c SubmitOrderCommand) AddressID() int64  { return c.addressID }

// ExpectedAmount returns the client-side total and whether one was given.
func (c SubmitOrderCommand) ExpectedAmount() (kernel.Money, bool) {
	if c.expectedAmount == nil {
		return kernel.Money{}, false
	}
	return *c.expectedAmount, true
}
