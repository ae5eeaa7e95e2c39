package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

// GetDroneQuery retrieves a single drone by its identifier.
type GetDroneQuery struct {
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for a single drone.
func NewGetDroneQuery(droneID kernel.UUID) (GetDroneQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetDroneQuery{}, errs.NewValueIsRequiredErrorWithCause("droneId", err)
	}

	return GetDroneQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// DroneID returns the requested drone identifier.
func (q GetDroneQuery) DroneID() kernel.UUID {
	return q.droneID
}
