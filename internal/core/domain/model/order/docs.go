// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the address snapshot, priced lines and timestamps
//   - Status / PayStatus: the two orthogonal enums with fixed storage encodings
//   - Patch: an immutable description of one transition, applied by the store as a
//     conditional update guarded by the statuses the transition may start from
//
// Key business rules:
//   - Status follows PendingPayment -> ToBeConfirmed -> Confirmed -> DeliveryInProgress -> Completed
//   - Cancelled is reachable from every non-terminal status, but customers may only
//     cancel before the shop accepts the order
//   - Cancelling a paid order refunds it
//   - Order transitions never mutate the aggregate; they return a Patch
package order
