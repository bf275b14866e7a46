package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PayStatus tracks refund eligibility independently of the lifecycle status.
type PayStatus int

const (
	Unpaid PayStatus = iota
	Paid
	Refunded
)

func (p PayStatus) Validate() error {
	if p < Unpaid || p > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("pay status is invalid", fmt.Errorf("%d is not a valid pay status", p))
	}
	return nil
}

func (p PayStatus) String() string {
	switch p {
	case Unpaid:
		return "Unpaid"
	case Paid:
		return "Paid"
	case Refunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}
