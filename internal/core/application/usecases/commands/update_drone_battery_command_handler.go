package commands

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// UpdateDroneBatteryCommandHandler records a battery reading on a
// delivering order and mirrors it onto the drone's own record. The order
// is the source of truth for the leg; the mirror keeps fleet listings
// honest between deliveries.
//
// The two writes are not transactional. A failed mirror is logged and
// the drone record catches up on the next reading or at release.
type UpdateDroneBatteryCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewUpdateDroneBatteryCommandHandler creates a handler for battery
// reports.
func NewUpdateDroneBatteryCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateDroneBatteryCommandHandler {
	return UpdateDroneBatteryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the battery report. The order must belong to a shop
// the requester owns and be delivering with a drone bound.
func (h UpdateDroneBatteryCommandHandler) Handle(ctx context.Context, cmd UpdateDroneBatteryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.IsManagedBy(cmd.ShopOwnerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = ord.ReportDroneBattery(cmd.Battery()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.Delivering); err != nil {
		return err
	}

	h.mirrorToDrone(ctx, uow, ord, cmd)

	return nil
}

func (h UpdateDroneBatteryCommandHandler) mirrorToDrone(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	cmd UpdateDroneBatteryCommand,
) {
	droneRepo := uow.DroneRepository()
	droneID := *ord.Drone()

	drn, err := droneRepo.Get(ctx, droneID)
	if err == nil {
		drn.ReportBattery(cmd.Battery())
		err = droneRepo.Update(ctx, drn)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "battery recorded on order but drone mirror failed",
			slog.String("order_id", ord.ID().String()),
			slog.String("drone_id", droneID.String()),
			slog.Any("error", err))
	}
}
