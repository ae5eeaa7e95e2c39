package queries

import (
	"context"

	"gorm.io/gorm"

	"dronedelivery/internal/core/domain/model/drone"
)

// GetAvailableDronesQueryHandler retrieves a shop's dispatchable drones
// from the database with direct SQL.
type GetAvailableDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDronesQueryHandler creates a handler for dispatchable
// drone listings.
func NewGetAvailableDronesQueryHandler(db *gorm.DB) GetAvailableDronesQueryHandler {
	return GetAvailableDronesQueryHandler{db: db}
}

// Handle executes the query. Returns the shop's active drones that are
// available and at or above the battery floor, sorted by serial number.
func (h GetAvailableDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDronesQuery,
) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+droneColumns+`
		FROM drones
		WHERE shop_id = ? AND is_active AND status = ? AND battery >= ?
		ORDER BY serial_number
	`, query.ShopID().Bytes(), drone.Available.String(), query.MinBattery()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDrones(rows)
}
