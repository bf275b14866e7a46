// Package kernel provides shared domain primitives for the ordering core.
//
// The package includes:
//   - Money: a fixed-point currency amount backed by shopspring/decimal
//   - ProductRef: the identity of a purchasable item (a dish with an optional
//     flavor, or a set meal), shared by cart items and order lines
//   - Clock: the time source used by lifecycle transitions and sweeps
//
// Values are immutable and safe for concurrent use.
package kernel
