package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves the orders placed at a shop owner's
// shops, newest first, optionally filtered by status.
type GetShopOrdersQuery struct {
	shopOwnerID kernel.UUID
	status      *order.Status
	page        int
	limit       int

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a shop owner's incoming
// orders. A nil status returns all statuses.
func NewGetShopOrdersQuery(
	shopOwnerID kernel.UUID,
	status *order.Status,
	page int,
	limit int,
) (GetShopOrdersQuery, error) {
	if err := shopOwnerID.Validate(); err != nil {
		return GetShopOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetShopOrdersQuery{}, err
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

	return GetShopOrdersQuery{
		shopOwnerID: shopOwnerID,
		status:      status,
		page:        page,
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopOwnerID returns the shop owner whose incoming orders are
// requested.
func (q GetShopOrdersQuery) ShopOwnerID() kernel.UUID {
	return q.shopOwnerID
}

// Status returns the optional status filter.
func (q GetShopOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetShopOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetShopOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset for the requested page.
func (q GetShopOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}
