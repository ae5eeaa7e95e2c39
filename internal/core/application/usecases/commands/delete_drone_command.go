package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrDeleteDroneCommandIsNotConstructed = errors.New(
	"DeleteDroneCommand must be created via NewDeleteDroneCommand constructor",
)

// DeleteDroneCommand represents a shop owner removing a drone from their
// fleet. Removal is a soft delete: the record stays for order history.
type DeleteDroneCommand struct { //nolint:recvcheck //using for validation
	droneID     kernel.UUID
	shopOwnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDroneCommand creates a command to soft-delete a drone.
func NewDeleteDroneCommand(droneID kernel.UUID, shopOwnerID kernel.UUID) (DeleteDroneCommand, error) {
	cmd := DeleteDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setShopOwnerID(shopOwnerID),
	); err != nil {
		return DeleteDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDroneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDroneCommandIsNotConstructed)
}

// DroneID returns the drone to remove.
func (c DeleteDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopOwnerID returns the requesting shop owner.
func (c DeleteDroneCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

func (c *DeleteDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *DeleteDroneCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}
