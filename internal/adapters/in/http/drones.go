package http

import (
	"dronedelivery/internal/adapters/in/http/auth"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createDroneRequest struct {
	ShopID       string  `json:"shopId"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serialNumber"`
	CapacityKg   float64 `json:"capacityKg"`
	MaxSpeedKmh  float64 `json:"maxSpeedKmh"`
	MaxAltitudeM float64 `json:"maxAltitudeM"`
	MaxRangeKm   float64 `json:"maxRangeKm"`
	Battery      int     `json:"battery"`
}

type updateDroneRequest struct {
	Model        *string  `json:"model"`
	SerialNumber *string  `json:"serialNumber"`
	CapacityKg   *float64 `json:"capacityKg"`
	MaxSpeedKmh  *float64 `json:"maxSpeedKmh"`
	MaxAltitudeM *float64 `json:"maxAltitudeM"`
	MaxRangeKm   *float64 `json:"maxRangeKm"`
}

type droneLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AltitudeM float64 `json:"altitudeM"`
	Battery   *int    `json:"battery"`
}

type droneStatusRequest struct {
	Status string `json:"status"`
}

// CreateDrone handles POST /api/v1/drones/create.
func (s *Server) CreateDrone(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	var req createDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("shopId", err))
	}

	battery, err := kernel.NewPercent(req.Battery)
	if err != nil {
		return fail(ctx, err)
	}

	droneID := kernel.NewUUID()
	cmd, err := commands.NewCreateDroneCommand(
		droneID,
		shopID,
		principal.UserID,
		req.Model,
		req.SerialNumber,
		req.CapacityKg,
		drone.Specifications{
			MaxSpeedKmh:  req.MaxSpeedKmh,
			MaxAltitudeM: req.MaxAltitudeM,
			MaxRangeKm:   req.MaxRangeKm,
		},
		battery,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "Drone registered", map[string]string{"droneId": droneID.String()})
}

// GetShopDrones handles GET /api/v1/drones/shop/:shopId.
func (s *Server) GetShopDrones(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("shopId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("shopId", err))
	}

	var status *drone.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := drone.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	page, limit := pageParams(ctx)

	query, err := queries.NewGetShopDronesQuery(shopID, status, page, limit)
	if err != nil {
		return fail(ctx, err)
	}

	drones, err := s.getShopDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return okPaged(ctx, "Drones retrieved", drones, pagination{
		Page:  query.Page(),
		Limit: query.Limit(),
		Count: len(drones),
	})
}

// GetDrone handles GET /api/v1/drones/:droneId.
func (s *Server) GetDrone(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	query, err := queries.NewGetDroneQuery(droneID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getDroneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone retrieved", result)
}

// UpdateDrone handles PUT /api/v1/drones/:droneId.
func (s *Server) UpdateDrone(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	var req updateDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var specs *drone.Specifications
	if req.MaxSpeedKmh != nil || req.MaxAltitudeM != nil || req.MaxRangeKm != nil {
		if req.MaxSpeedKmh == nil || req.MaxAltitudeM == nil || req.MaxRangeKm == nil {
			return fail(ctx, errs.NewValueIsRequiredError("specifications"))
		}
		specs = &drone.Specifications{
			MaxSpeedKmh:  *req.MaxSpeedKmh,
			MaxAltitudeM: *req.MaxAltitudeM,
			MaxRangeKm:   *req.MaxRangeKm,
		}
	}

	cmd, err := commands.NewUpdateDroneCommand(
		droneID,
		principal.UserID,
		req.Model,
		req.SerialNumber,
		req.CapacityKg,
		specs,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone updated", nil)
}

// UpdateDroneLocation handles PUT /api/v1/drones/:droneId/location.
// Telemetry comes from the device side, so there is no owner scope.
func (s *Server) UpdateDroneLocation(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	var req droneLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return fail(ctx, err)
	}

	var battery *kernel.Percent
	if req.Battery != nil {
		parsed, batteryErr := kernel.NewPercent(*req.Battery)
		if batteryErr != nil {
			return fail(ctx, batteryErr)
		}
		battery = &parsed
	}

	cmd, err := commands.NewUpdateDroneLocationCommand(droneID, position, req.AltitudeM, battery)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateDroneLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone location recorded", nil)
}

// UpdateDroneStatus handles PUT /api/v1/drones/:droneId/status.
func (s *Server) UpdateDroneStatus(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	var req droneStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := drone.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDroneStatusCommand(droneID, principal.UserID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateDroneStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone status updated", nil)
}

// DeleteDrone handles DELETE /api/v1/drones/:droneId.
func (s *Server) DeleteDrone(ctx echo.Context) error {
	principal, authed := auth.FromContext(ctx)
	if !authed {
		return echo.ErrUnauthorized
	}

	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("droneId", err))
	}

	cmd, err := commands.NewDeleteDroneCommand(droneID, principal.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.deleteDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "Drone deactivated", nil)
}
