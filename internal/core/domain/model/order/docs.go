// Package order provides domain entities and business logic for order
// management in the drone delivery system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing line items, payment state, the
//     order status machine, and the drone binding for the delivery leg
//   - Status: a state machine enforcing the
//     pending -> confirmed -> preparing -> delivering -> completed workflow,
//     with cancellation reachable from every non-terminal status
//   - LineItemSnapshot: an immutable copy of catalog item data captured at
//     order-creation time
//
// Key business rules:
//   - All line items of an order must belong to a single shop
//   - totalAmount always equals the sum of line item subtotals
//   - An order acquires a drone only on the preparing -> delivering
//     transition, and keeps the reference afterwards as history
//   - An order without a drone can never be delivering
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
