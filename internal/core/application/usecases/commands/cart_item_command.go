package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCartItemCommandIsNotConstructed = errors.New(
	"CartItemCommand must be created via NewCartItemCommand constructor",
)

// CartItemCommand names one product in a customer's cart. It is used both to
// add a unit and to remove one. Exactly one of dishID and setmealID is set;
// the flavor only applies to dishes.
type CartItemCommand struct {
	customerID int64
	product    kernel.ProductRef

	guard guard.ConstructorGuard
}

func NewCartItemCommand(customerID, dishID, setmealID int64, flavor string) (CartItemCommand, error) {
	if err := validateID("customerId", customerID); err != nil {
		return CartItemCommand{}, err
	}

	var (
		product kernel.ProductRef
		err     error
	)
	switch {
	case dishID > 0 && setmealID > 0:
		return CartItemCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"product",
			errors.New("either dishId or setmealId must be set, not both"),
		)
	case dishID > 0:
		product, err = kernel.NewDishRef(dishID, strings.TrimSpace(flavor))
	case setmealID > 0:
		product, err = kernel.NewSetmealRef(setmealID)
	default:
		return CartItemCommand{}, errs.NewValueIsRequiredError("dishId or setmealId")
	}
	if err != nil {
		return CartItemCommand{}, err
	}

	return CartItemCommand{customerID: customerID, product: product, guard: guard.NewConstructorGuard()}, nil
}

func (c CartItemCommand) Validate() error {
	return c.guard.Validate(ErrCartItemCommandIsNotConstructed)
}

func (c CartItemCommand) CustomerID() int64          { return c.customerID }
func (c CartItemCommand) Product() kernel.ProductRef { return c.product }
