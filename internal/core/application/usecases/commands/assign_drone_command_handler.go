package commands

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/errs"
)

// AssignDroneCommandHandler binds a drone to a prepared order. The
// at-most-once guarantee does not come from a cross-entity transaction:
// the drone row is claimed first with an update conditional on the
// available status, so of two racing assignments exactly one wins and
// the loser gets a conflict with both entities unchanged.
//
// Write order is drone first, then order. If the order write fails after
// the drone was claimed, the drone is left busy without a delivering
// order; the divergence is logged and the fleet reconciliation sweep
// returns it to the pool.
type AssignDroneCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewAssignDroneCommandHandler creates a handler for drone dispatch.
func NewAssignDroneCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the dispatch. The order must belong to a shop the
// requester owns and be preparing; the drone must be an available,
// active drone of the same shop at or above the dispatch battery floor.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, cmd AssignDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.IsManagedBy(cmd.ShopOwnerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	drn, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = services.NewDroneDispatcher().Dispatch(ord, drn); err != nil {
		return err
	}

	// claim the drone first: the conditional update from available is
	// the race arbiter
	if err = droneRepo.UpdateInStatus(ctx, drn, drone.Available); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.Preparing); err != nil {
		h.logger.ErrorContext(ctx, "drone claimed but order write failed, waiting for fleet sweep",
			slog.String("order_id", ord.ID().String()),
			slog.String("drone_id", drn.ID().String()),
			slog.Any("error", err))
		return err
	}

	return nil
}
