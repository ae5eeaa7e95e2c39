package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler retrieves a shop owner's incoming orders
// from the database with direct SQL.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order
// listings.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the owner's incoming orders newest
// first, optionally narrowed to one status.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE shop_owner_id = ?`
	args := []any{query.ShopOwnerID().Bytes()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}

	sql += `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(ctx, h.db, rows)
}
