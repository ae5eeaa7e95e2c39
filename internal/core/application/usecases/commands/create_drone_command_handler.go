package commands

import (
	"context"
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/pkg/errs"
)

// ErrSerialNumberTaken is the cause recorded when a registration or
// update collides with an existing serial number.
var ErrSerialNumberTaken = errors.New("serial number is already registered")

// CreateDroneCommandHandler registers a new drone for a shop. The serial
// number is checked up front for a friendly error; the database unique
// index is the real arbiter under concurrency.
type CreateDroneCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewCreateDroneCommandHandler creates a handler for drone registration.
func NewCreateDroneCommandHandler(uowFactory RegistryUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. The shop must exist and belong to
// the requester; a shop owned by someone else is reported as not found.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) error {
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

	shop, err := uow.CatalogReader().GetShop(ctx, cmd.ShopID())
	if err != nil {
		return err
	}
	if !shop.OwnerID.IsEqual(cmd.ShopOwnerID()) {
		return errs.NewObjectNotFoundError("shopId", cmd.ShopID())
	}

	droneRepo := uow.DroneRepository()

	_, err = droneRepo.GetBySerial(ctx, cmd.SerialNumber())
	if err == nil {
		return errs.NewConflictErrorWithCause("serialNumber", cmd.SerialNumber(), ErrSerialNumberTaken)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newDrone, err := drone.NewDrone(cmd.DroneID(), cmd.ShopID(), cmd.Model(),
		cmd.SerialNumber(), cmd.CapacityKg(), cmd.Specifications(), cmd.Battery(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = droneRepo.Add(ctx, newDrone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
