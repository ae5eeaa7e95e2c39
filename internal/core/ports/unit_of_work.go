package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary around a single
// aggregate write. Dispatch paths that touch both an order and a drone
// deliberately do not share one transaction: each side is written with
// a conditional update and divergence is repaired by the reconciliation
// sweep.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DroneRepository returns a DroneRepository bound to the current
	// transaction when one is active, or to the base connection.
	DroneRepository() DroneRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction when one is active, or to the base connection.
	OrderRepository() OrderRepository

	// CatalogReader returns a CatalogReader bound to the current
	// transaction when one is active, or to the base connection.
	CatalogReader() CatalogReader
}
