// Package ports defines repository interfaces between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	// Add persists a new drone aggregate to storage. Returns
	// ConflictError when the serial number is already registered.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate
	// unconditionally. Returns ObjectNotFoundError when the drone does
	// not exist and ConflictError when a serial-number change collides
	// with another drone.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// UpdateInStatus persists changes to an existing drone only if the
	// stored row is still in the expected status. Returns ConflictError
	// when a concurrent writer moved the drone first. This is the
	// at-most-once guard of the dispatch path: two racing assignments
	// both read the drone as available, but only the first conditional
	// update from available succeeds.
	UpdateInStatus(ctx context.Context, aggregate *drone.Drone, expected drone.Status) error

	// Get retrieves a drone aggregate by its unique identifier,
	// including soft-deleted drones. Returns ObjectNotFoundError when
	// no such drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetBySerial retrieves a drone by its serial number, including
	// soft-deleted drones. Returns ObjectNotFoundError when no drone
	// carries the serial.
	GetBySerial(ctx context.Context, serialNumber string) (*drone.Drone, error)

	// GetAllBusy retrieves every active drone currently in the busy
	// status. Used by the fleet reconciliation sweep to find drones
	// whose bound order already reached a terminal status.
	GetAllBusy(ctx context.Context) ([]*drone.Drone, error)
}
