package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
)

// SweepResult summarizes one timeout sweep. Every candidate ends up in exactly
// one of Applied, Skipped or Failed.
type SweepResult struct {
	Candidates int
	Applied    int
	Skipped    int
	Failed     int
}

func validateSweep(now time.Time, timeout time.Duration) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	if timeout <= 0 {
		return errs.NewValueIsOutOfRangeError("timeout", timeout, "1ns", "unbounded")
	}
	return nil
}

// record files the outcome of one candidate. A candidate that moved to a state
// the sweep no longer applies to is skipped, not failed.
func (r *SweepResult) record(err error) {
	switch {
	case err == nil:
		r.Applied++
	case errors.Is(err, errs.ErrInvalidOrderStatus):
		r.Skipped++
	default:
		r.Failed++
	}
}
