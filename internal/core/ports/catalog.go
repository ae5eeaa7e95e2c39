package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
)

// CatalogItem is a read-model row describing a menu item at the moment
// an order is created. Orders copy these values into line-item
// snapshots; later catalog edits never touch placed orders.
type CatalogItem struct {
	ID          kernel.UUID
	Name        string
	Image       string
	Category    string
	Price       float64
	IsAvailable bool
	ShopID      kernel.UUID
	ShopOwnerID kernel.UUID
}

// CatalogShop is a read-model row describing a registered shop.
type CatalogShop struct {
	ID       kernel.UUID
	OwnerID  kernel.UUID
	Name     string
	IsActive bool
}

// CatalogReader provides read-only access to the shop catalog. The
// catalog is owned by another context; this port only resolves the
// references orders and drones hold into it.
type CatalogReader interface {
	// GetItems resolves menu items by their identifiers. Returns
	// ObjectNotFoundError when any requested item does not exist.
	GetItems(ctx context.Context, ids []kernel.UUID) ([]CatalogItem, error)

	// GetShop resolves a shop by its identifier. Returns
	// ObjectNotFoundError when the shop does not exist.
	GetShop(ctx context.Context, id kernel.UUID) (CatalogShop, error)
}
