package commands

import (
	"context"
	"time"
)

// UpdateDroneLocationCommandHandler records drone telemetry. Reports
// come from the drones themselves and are stored at face value.
type UpdateDroneLocationCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewUpdateDroneLocationCommandHandler creates a handler for telemetry
// reports.
func NewUpdateDroneLocationCommandHandler(uowFactory DroneUoWFactory) UpdateDroneLocationCommandHandler {
	return UpdateDroneLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the telemetry report.
func (h UpdateDroneLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDroneLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	drn, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = drn.RecordTelemetry(cmd.Position(), cmd.AltitudeM(), cmd.Battery(), time.Now().UTC()); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, drn); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
