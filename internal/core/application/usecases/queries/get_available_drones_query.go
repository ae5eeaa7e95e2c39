package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetAvailableDronesQueryIsNotConstructed = errors.New(
	"GetAvailableDronesQuery must be created via NewGetAvailableDronesQuery constructor",
)

// GetAvailableDronesQuery retrieves the drones of one shop that can be
// offered for dispatch right now: active, available, and at or above
// the dispatch battery floor.
type GetAvailableDronesQuery struct {
	shopID     kernel.UUID
	minBattery int

	guard guard.ConstructorGuard
}

// NewGetAvailableDronesQuery creates a query for dispatchable drones of
// a shop with the given battery floor.
func NewGetAvailableDronesQuery(shopID kernel.UUID, minBattery int) (GetAvailableDronesQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetAvailableDronesQuery{}, errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}

	return GetAvailableDronesQuery{
		shopID:     shopID,
		minBattery: minBattery,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDronesQueryIsNotConstructed)
}

// ShopID returns the shop whose dispatchable drones are requested.
func (q GetAvailableDronesQuery) ShopID() kernel.UUID {
	return q.shopID
}

// MinBattery returns the battery floor applied to the listing.
func (q GetAvailableDronesQuery) MinBattery() int {
	return q.minBattery
}
