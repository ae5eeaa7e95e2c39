package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally. Returns ObjectNotFoundError when the order does
	// not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes to an existing order only if the
	// stored row is still in the expected status. Returns ConflictError
	// when a concurrent writer moved the order first, so callers get an
	// at-most-once guarantee without a cross-entity transaction.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves every order currently in the given
	// status. Used by the fleet reconciliation sweep to find the orders
	// that hold drones.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
