// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it writes.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DroneRepoFactory provides access to the drone repository within a
	// unit of work.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// CatalogReaderFactory provides access to the catalog read model
	// within a unit of work.
	CatalogReaderFactory interface {
		CatalogReader() ports.CatalogReader
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages order creation, which also resolves catalog
	// items into line-item snapshots.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CatalogReaderFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DroneUoW manages transactions for drone-only operations.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates new drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// RegistryUoW manages drone registration, which also checks the
	// owning shop against the catalog.
	RegistryUoW interface {
		TxManager
		DroneRepoFactory
		CatalogReaderFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// UoW exposes both the order and the drone repository. Dispatch
	// handlers use it WITHOUT Begin/Commit: the two aggregates are never
	// written inside one transaction. Each side is persisted with a
	// conditional update and divergence is logged and repaired by the
	// fleet reconciliation sweep.
	UoW interface {
		TxManager
		OrderRepoFactory
		DroneRepoFactory
	}

	// UoWFactory creates new unit of work instances for operations that
	// touch both aggregates.
	UoWFactory interface {
		Create() UoW
	}
)
