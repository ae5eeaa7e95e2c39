package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopDronesQueryHandler retrieves a shop's fleet from the database
// with direct SQL.
type GetShopDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetShopDronesQueryHandler creates a handler for fleet listings.
func NewGetShopDronesQueryHandler(db *gorm.DB) GetShopDronesQueryHandler {
	return GetShopDronesQueryHandler{db: db}
}

// Handle executes the query. Returns a page of the shop's active drones
// sorted by serial number, optionally narrowed to one status;
// soft-deleted drones never appear.
func (h GetShopDronesQueryHandler) Handle(
	ctx context.Context,
	query GetShopDronesQuery,
) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + droneColumns + `
		FROM drones
		WHERE shop_id = ? AND is_active`
	args := []any{query.ShopID().Bytes()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}

	sql += `
		ORDER BY serial_number
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDrones(rows)
}
