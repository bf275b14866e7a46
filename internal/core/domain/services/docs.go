// Package services holds domain logic that spans more than one aggregate.
//
//   - NumberGenerator: produces unique, increasing order numbers
//   - CheckoutAssembler: converts the cart items of one customer into a new order
package services
