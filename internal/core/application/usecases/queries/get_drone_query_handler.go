package queries

import (
	"context"

	"gorm.io/gorm"

	"dronedelivery/internal/pkg/errs"
)

// GetDroneQueryHandler retrieves one drone from the database with
// direct SQL.
type GetDroneQueryHandler struct {
	db *gorm.DB
}

// NewGetDroneQueryHandler creates a handler for single-drone queries.
func NewGetDroneQueryHandler(db *gorm.DB) GetDroneQueryHandler {
	return GetDroneQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the drone
// does not exist or was deactivated.
func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return DroneResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+droneColumns+`
		FROM drones
		WHERE id = ? AND is_active
	`, query.DroneID().Bytes()).Rows()
	if err != nil {
		return DroneResponse{}, err
	}
	defer rows.Close()

	drones, err := scanDrones(rows)
	if err != nil {
		return DroneResponse{}, err
	}
	if len(drones) == 0 {
		return DroneResponse{}, errs.NewObjectNotFoundError("droneId", query.DroneID())
	}

	return drones[0], nil
}
