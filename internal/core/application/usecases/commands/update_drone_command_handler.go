package commands

import (
	"context"
	"errors"

	"dronedelivery/internal/pkg/errs"
)

// UpdateDroneCommandHandler applies partial updates to a drone's
// registration details, re-checking serial uniqueness on change.
type UpdateDroneCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateDroneCommandHandler creates a handler for drone updates.
func NewUpdateDroneCommandHandler(uowFactory RegistryUoWFactory) UpdateDroneCommandHandler {
	return UpdateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update. The drone must belong to a shop the
// requester owns; other drones are reported as not found.
func (h UpdateDroneCommandHandler) Handle(ctx context.Context, cmd UpdateDroneCommand) error {
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

	if serial := cmd.SerialNumber(); serial != nil && *serial != drn.SerialNumber() {
		other, err := droneRepo.GetBySerial(ctx, *serial)
		if err == nil && !other.IsEqual(drn) {
			return errs.NewConflictErrorWithCause("serialNumber", *serial, ErrSerialNumberTaken)
		}
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if err = drn.ChangeSerialNumber(*serial); err != nil {
			return err
		}
	}

	if model := cmd.Model(); model != nil {
		if err = drn.ChangeModel(*model); err != nil {
			return err
		}
	}
	if capacity := cmd.CapacityKg(); capacity != nil {
		if err = drn.ChangeCapacity(*capacity); err != nil {
			return err
		}
	}
	if specs := cmd.Specifications(); specs != nil {
		if err = drn.ChangeSpecifications(*specs); err != nil {
			return err
		}
	}

	if err = droneRepo.Update(ctx, drn); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
