package commands

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// ReconcileFleetCommandHandler is the repair loop of the dispatch
// design. A busy drone is legitimate only while some delivering order
// holds it; every other busy drone is an orphan from a partial failure
// and is returned to the pool without touching its battery. A
// delivering order whose drone is no longer busy is reported but left
// alone.
type ReconcileFleetCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewReconcileFleetCommandHandler creates a handler for the fleet sweep.
func NewReconcileFleetCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ReconcileFleetCommandHandler {
	return ReconcileFleetCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes one sweep. Each orphaned drone is released with a
// conditional update from busy, so a reclaim racing a legitimate
// dispatch loses cleanly. Individual failures are logged and the sweep
// moves on; the next run retries.
func (h ReconcileFleetCommandHandler) Handle(ctx context.Context, cmd ReconcileFleetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	droneRepo := uow.DroneRepository()

	busyDrones, err := droneRepo.GetAllBusy(ctx)
	if err != nil {
		return err
	}

	delivering, err := uow.OrderRepository().GetAllInStatus(ctx, order.Delivering)
	if err != nil {
		return err
	}

	busy := make(map[kernel.UUID]struct{}, len(busyDrones))
	for _, drn := range busyDrones {
		busy[drn.ID()] = struct{}{}
	}

	held := make(map[kernel.UUID]struct{}, len(delivering))
	for _, ord := range delivering {
		droneID := ord.Drone()
		if droneID == nil {
			continue
		}
		held[*droneID] = struct{}{}

		// The opposite divergence cannot be repaired blindly: the order
		// is mid-flight from the customer's point of view. Surface it
		// for the operator instead.
		if _, ok := busy[*droneID]; !ok {
			h.logger.ErrorContext(ctx, "delivering order holds a drone that is not busy",
				slog.String("order_id", ord.ID().String()),
				slog.String("drone_id", droneID.String()))
		}
	}

	for _, drn := range busyDrones {
		if _, ok := held[drn.ID()]; ok {
			continue
		}

		if err = drn.Release(nil); err != nil {
			h.logger.WarnContext(ctx, "fleet sweep could not release drone",
				slog.String("drone_id", drn.ID().String()),
				slog.Any("error", err))
			continue
		}

		if err = droneRepo.UpdateInStatus(ctx, drn, drone.Busy); err != nil {
			h.logger.WarnContext(ctx, "fleet sweep lost a race releasing drone",
				slog.String("drone_id", drn.ID().String()),
				slog.Any("error", err))
			continue
		}

		h.logger.InfoContext(ctx, "fleet sweep reclaimed orphaned drone",
			slog.String("drone_id", drn.ID().String()))
	}

	return nil
}
