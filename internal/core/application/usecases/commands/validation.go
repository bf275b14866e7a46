package commands

import "foodorder/internal/pkg/errs"

func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(paramName, id, 1, "max int64")
	}
	return nil
}
