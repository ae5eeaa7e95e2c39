package http

import (
	"dronedelivery/internal/adapters/in/http/auth"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type changeOrderStatusRequest struct {
	Status       string `json:"status"`
	CancelReason string `json:"cancelReason"`
}

type assignDroneRequest struct {
	DroneID string `json:"droneId"`
}

type droneBatteryRequest struct {
	Battery int `json:"batteryPercentage"`
}

// GetShopOrders handles GET /api/v1/orders/shop/my-orders.
func (s *Server) GetShopOrders(ctx echo.Context) error {
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

	query, err := queries.NewGetShopOrdersQuery(principal.UserID, status, page, limit)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return okPaged(ctx, "Orders retrieved", orders, pagination{
		Page:  query.Page(),
		Limit: query.Limit(),
		Count: len(orders),
	})
}

// GetShopOrder handles GET /api/v1/orders/shop/:orderId. Visibility is
// the same buyer-or-owner rule as the buyer endpoint.
func (s *Server) GetShopOrder(ctx echo.Context) error {
	return s.GetOrder(ctx)
}

// ChangeOrderStatus handles PUT /api/v1/orders/shop/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req changeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, principal.UserID, target, req.CancelReason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Order status updated", nil)
}

// GetAvailableDrones handles GET /api/v1/orders/shop/:orderId/available-drones.
// The order resolves which shop's fleet to list; the battery floor is
// the dispatch minimum.
func (s *Server) GetAvailableDrones(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	orderQuery, err := queries.NewGetOrderQuery(orderID, principal.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	summary, err := s.getOrderHandler.Handle(ctx.Request().Context(), orderQuery)
	if err != nil {
		return fail(ctx, err)
	}

	dronesQuery, err := queries.NewGetAvailableDronesQuery(summary.ShopID, drone.MinDispatchBattery)
	if err != nil {
		return fail(ctx, err)
	}

	drones, err := s.getAvailableDronesHandler.Handle(ctx.Request().Context(), dronesQuery)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Available drones retrieved", drones)
}

// AssignDrone handles POST /api/v1/orders/shop/:orderId/assign-drone.
func (s *Server) AssignDrone(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req assignDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	droneID, err := kernel.UUIDFromString(req.DroneID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	cmd, err := commands.NewAssignDroneCommand(orderID, droneID, principal.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.assignDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone assigned", nil)
}

// UpdateDroneBattery handles PUT /api/v1/orders/shop/:orderId/drone-battery.
func (s *Server) UpdateDroneBattery(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req droneBatteryRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	battery, err := kernel.NewPercent(req.Battery)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDroneBatteryCommand(orderID, principal.UserID, battery)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateDroneBatteryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone battery recorded", nil)
}
