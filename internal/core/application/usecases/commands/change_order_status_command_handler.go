package commands

import (
	"context"
	"log/slog"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler drives shop-side order transitions.
// When a transition lands in a terminal status while a drone is bound,
// the drone is released back to the pool: a completed delivery keeps the
// last reported battery, a cancellation leaves the drone's own reading.
//
// The order and the drone are written separately, not in one
// transaction. If the drone release fails after the order write, the
// divergence is logged and the fleet reconciliation sweep repairs it.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for shop-side
// order transitions.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the transition. The order must belong to a shop the
// requester owns; other orders are reported as not found. The order
// write is conditional on the status read, so concurrent transitions
// settle to exactly one winner.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	previous := ord.Status()
	if err = ord.ChangeStatus(cmd.Target(), cmd.CancelReason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, previous); err != nil {
		return err
	}

	if ord.Status().IsTerminal() && ord.Drone() != nil {
		h.releaseDrone(ctx, uow, ord)
	}

	return nil
}

// releaseDrone returns the bound drone to the pool. Failures are logged,
// never propagated: the order transition already happened and stands.
func (h ChangeOrderStatusCommandHandler) releaseDrone(ctx context.Context, uow UoW, ord *order.Order) {
	droneRepo := uow.DroneRepository()
	droneID := *ord.Drone()

	drn, err := droneRepo.Get(ctx, droneID)
	if err != nil {
		h.logDivergence(ctx, ord.ID(), droneID, err)
		return
	}

	var battery *kernel.Percent
	if ord.Status() == order.Completed {
		legBattery := ord.DroneBattery()
		battery = &legBattery
	}

	if err = drn.Release(battery); err != nil {
		h.logDivergence(ctx, ord.ID(), droneID, err)
		return
	}

	if err = droneRepo.UpdateInStatus(ctx, drn, drone.Busy); err != nil {
		h.logDivergence(ctx, ord.ID(), droneID, err)
	}
}

func (h ChangeOrderStatusCommandHandler) logDivergence(
	ctx context.Context,
	orderID kernel.UUID,
	droneID kernel.UUID,
	err error,
) {
	h.logger.ErrorContext(ctx, "order finished but drone release failed, waiting for fleet sweep",
		slog.String("order_id", orderID.String()),
		slog.String("drone_id", droneID.String()),
		slog.Any("error", err))
}
