package http

import (
	"strconv"

	"dronedelivery/internal/adapters/in/http/auth"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	Items         []orderLineRequest `json:"items"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Note          string             `json:"note"`
	ContactName   string             `json:"contactName"`
	ContactPhone  string             `json:"contactPhone"`
	ContactEmail  string             `json:"contactEmail"`
	PaymentMethod string             `json:"paymentMethod"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := kernel.UUIDFromString(line.ItemID)
		if err != nil {
			return fail(ctx, errs.NewValueIsInvalidErrorWithCause("itemId", err))
		}
		lines = append(lines, commands.OrderLine{ItemID: itemID, Quantity: line.Quantity})
	}

	coordinates, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return fail(ctx, err)
	}

	address, err := order.NewDeliveryAddress(req.Address, req.City, coordinates, req.Note)
	if err != nil {
		return fail(ctx, err)
	}

	contact, err := order.NewContactInfo(req.ContactName, req.ContactPhone, req.ContactEmail)
	if err != nil {
		return fail(ctx, err)
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal.UserID, lines, address, contact, method)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "Order created", map[string]string{"orderId": orderID.String()})
}

// GetUserOrders handles GET /api/v1/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	page, limit := pageParams(ctx)

	query, err := queries.NewGetUserOrdersQuery(principal.UserID, status, page, limit)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return okPaged(ctx, "Orders retrieved", orders, pagination{
		Page:  query.Page(),
		Limit: query.Limit(),
		Count: len(orders),
	})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderQuery(orderID, principal.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Order retrieved", result)
}

// CancelOrder handles PUT /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.UserID, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Order cancelled", nil)
}

// ConfirmOrderPayment handles PUT /api/v1/payments/:orderId/confirm.
func (s *Server) ConfirmOrderPayment(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewConfirmOrderPaymentCommand(orderID, principal.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.confirmOrderPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Payment confirmed", nil)
}

func pageParams(ctx echo.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	return page, limit
}
