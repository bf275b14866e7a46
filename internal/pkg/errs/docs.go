// Package errs holds the error kinds shared by the order-processing core.
//
//   - ValueIsRequiredError: a mandatory input is empty
//   - ValueIsInvalidError: an input is malformed or inconsistent
//   - ValueIsOutOfRangeError: a number or date falls outside its allowed bounds
//   - ObjectNotFoundError: an order, address or catalog entry cannot be found
//   - InvalidOrderStatusError: a transition attempted from a disallowed order status
//   - BusinessRuleViolationError: cross-entity rules such as staff-mediated cancellation
//
// Every kind has a sentinel (ErrValueIsRequired and friends) reachable through
// Unwrap, so callers classify failures with errors.Is. The HTTP adapter maps the
// sentinels onto status codes.
package errs
