package commands

import (
	"context"

	"dronedelivery/internal/pkg/errs"
)

// UpdateDroneStatusCommandHandler applies owner-driven fleet status
// changes: parking a drone for maintenance, taking it offline, retiring
// it, or returning it to the available pool.
type UpdateDroneStatusCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateDroneStatusCommandHandler creates a handler for fleet status
// changes.
func NewUpdateDroneStatusCommandHandler(uowFactory RegistryUoWFactory) UpdateDroneStatusCommandHandler {
	return UpdateDroneStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. The override applies even to a
// busy drone (grounding one mid-delivery is the owner's call); a
// delivering order left pointing at a non-busy drone is picked up by
// the fleet reconciliation sweep.
func (h UpdateDroneStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDroneStatusCommand) error {
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

	shop, err := uow.CatalogReader().GetShop(ctx, drn.ShopID())
	if err != nil {
		return err
	}
	if !shop.OwnerID.IsEqual(cmd.ShopOwnerID()) {
		return errs.NewObjectNotFoundError("droneId", cmd.DroneID())
	}

	if err = drn.OverrideStatus(cmd.Target()); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, drn); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
