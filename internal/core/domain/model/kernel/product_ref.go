package kernel

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

var ErrProductRefIsNotConstructed = errs.NewValueIsRequiredError("product reference")

// ProductRef identifies a purchasable item: a dish (optionally with a flavor
// variant) or a set meal, never both.
type ProductRef struct {
	dishID    int64
	setmealID int64
	flavor    string
}

func NewDishRef(dishID int64, flavor string) (ProductRef, error) {
	if dishID <= 0 {
		return ProductRef{}, errs.NewValueIsOutOfRangeError("dishId", dishID, 1, "max int64")
	}
	return ProductRef{dishID: dishID, flavor: flavor}, nil
}

func NewSetmealRef(setmealID int64) (ProductRef, error) {
	if setmealID <= 0 {
		return ProductRef{}, errs.NewValueIsOutOfRangeError("setmealId", setmealID, 1, "max int64")
	}
	return ProductRef{setmealID: setmealID}, nil
}

// RestoreProductRef rebuilds a reference from stored nullable columns.
func RestoreProductRef(dishID, setmealID *int64, flavor string) (ProductRef, error) {
	switch {
	case dishID != nil && setmealID != nil:
		return ProductRef{}, errs.NewValueIsInvalidErrorWithCause(
			"product reference",
			errors.New("dish and setmeal are mutually exclusive"),
		)
	case dishID != nil:
		return NewDishRef(*dishID, flavor)
	case setmealID != nil:
		return NewSetmealRef(*setmealID)
	default:
		return ProductRef{}, ErrProductRefIsNotConstructed
	}
}

func (p ProductRef) Validate() error {
	if p.dishID == 0 && p.setmealID == 0 {
		return ErrProductRefIsNotConstructed
	}
	return nil
}

func (p ProductRef) IsDish() bool {
	return p.dishID != 0
}

// DishID returns nil for set meal references.
func (p ProductRef) DishID() *int64 {
	if p.dishID == 0 {
		return nil
	}
	id := p.dishID
	return &id
}

// SetmealID returns nil for dish references.
func (p ProductRef) SetmealID() *int64 {
	if p.setmealID == 0 {
		return nil
	}
	id := p.setmealID
	return &id
}

func (p ProductRef) Flavor() string {
	return p.flavor
}

// IsEqual compares the full identity tuple, flavor included.
func (p ProductRef) IsEqual(other ProductRef) bool {
	return p == other
}
