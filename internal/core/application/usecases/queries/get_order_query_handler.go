package queries

import (
	"context"

	"gorm.io/gorm"

	"dronedelivery/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order from the database with direct
// SQL. Visibility is enforced in the query itself: orders of other
// buyers and shops come back as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// does not exist or the requester is neither its buyer nor the owner of
// its shop.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ? AND (user_id = ? OR shop_owner_id = ?)
	`, query.OrderID().Bytes(), query.RequesterID().Bytes(), query.RequesterID().Bytes()).Rows()
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(ctx, h.db, rows)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	if len(orders) == 0 {
		return OrderSummaryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return orders[0], nil
}
