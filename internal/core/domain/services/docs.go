// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that do
// not naturally belong to a single aggregate root.
//
// The package includes:
//   - DroneDispatcher: pairs a prepared order with a shop's drone
//
// Domain services coordinate between aggregates while each aggregate
// keeps enforcing its own invariants.
package services
