package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetShopDronesQueryIsNotConstructed = errors.New(
	"GetShopDronesQuery must be created via NewGetShopDronesQuery constructor",
)

// GetShopDronesQuery retrieves the active fleet of one shop, optionally
// filtered by status. Soft deleted drones are excluded.
type GetShopDronesQuery struct {
	shopID kernel.UUID
	status *drone.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetShopDronesQuery creates a query for a shop's fleet. A nil
// status returns all statuses.
func NewGetShopDronesQuery(
	shopID kernel.UUID,
	status *drone.Status,
	page int,
	limit int,
) (GetShopDronesQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopDronesQuery{}, errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetShopDronesQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return GetShopDronesQuery{
		shopID: shopID,
		status: status,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetShopDronesQueryIsNotConstructed)
}

// ShopID returns the shop whose fleet is requested.
func (q GetShopDronesQuery) ShopID() kernel.UUID {
	return q.shopID
}

// Status returns the optional status filter.
func (q GetShopDronesQuery) Status() *drone.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetShopDronesQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetShopDronesQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset for the requested page.
func (q GetShopDronesQuery) Offset() int {
	return (q.page - 1) * q.limit
}
