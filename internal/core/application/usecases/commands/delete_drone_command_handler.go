package commands

import (
	"context"

	"dronedelivery/internal/pkg/errs"
)

// DeleteDroneCommandHandler soft-deletes a drone. The record survives so
// completed orders keep a valid drone reference; it just disappears from
// listings and availability.
type DeleteDroneCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewDeleteDroneCommandHandler creates a handler for drone removal.
func NewDeleteDroneCommandHandler(uowFactory RegistryUoWFactory) DeleteDroneCommandHandler {
	return DeleteDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. A busy drone cannot be removed
// mid-delivery; the aggregate refuses with a conflict.
func (h DeleteDroneCommandHandler) Handle(ctx context.Context, cmd DeleteDroneCommand) error {
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

	if err = drn.Deactivate(); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, drn); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
