// Package drone provides domain entities and business logic for fleet
// management in the drone delivery system. It implements the Drone
// aggregate root with status bookkeeping, battery state, telemetry, and
// flight statistics.
//
// The package includes:
//   - Drone: the aggregate root managing identity, shop association,
//     status, battery, telemetry, and the soft-delete flag
//   - Status: the fleet states available, busy, maintenance, offline,
//     and retired
//
// Key business rules:
//   - serial numbers are unique fleet-wide (enforced by the registry)
//   - a drone is busy exactly while it is bound to one delivering order
//   - drones below the minimum dispatch battery (30%) are never offered
//     for new assignments
//   - soft-deleted drones disappear from fleet listings but remain
//     referenced by historical orders
package drone
