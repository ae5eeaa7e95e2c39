package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetUserOrdersQuery retrieves a buyer's own orders, newest first,
// optionally filtered by status.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a buyer's order history.
// A nil status returns all statuses. Page numbers start at 1; a zero
// limit falls back to the default page size and oversized limits are
// clamped.
func NewGetUserOrdersQuery(
	userID kernel.UUID,
	status *order.Status,
	page int,
	limit int,
) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetUserOrdersQuery{}, err
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

	return GetUserOrdersQuery{
		userID: userID,
		status: status,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the buyer whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Status returns the optional status filter.
func (q GetUserOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetUserOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset for the requested page.
func (q GetUserOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}
