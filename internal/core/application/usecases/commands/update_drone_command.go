package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrUpdateDroneCommandIsNotConstructed = errors.New(
	"UpdateDroneCommand must be created via NewUpdateDroneCommand constructor",
)

// UpdateDroneCommand represents a partial update of a drone's
// registration details. Nil fields are left unchanged.
type UpdateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID      kernel.UUID
	shopOwnerID  kernel.UUID
	model        *string
	serialNumber *string
	capacityKg   *float64
	specs        *drone.Specifications

	guard guard.ConstructorGuard
}

// NewUpdateDroneCommand creates a command to update a drone's details.
// At least one field must be provided.
func NewUpdateDroneCommand(
	droneID kernel.UUID,
	shopOwnerID kernel.UUID,
	model *string,
	serialNumber *string,
	capacityKg *float64,
	specs *drone.Specifications,
) (UpdateDroneCommand, error) {
	cmd := UpdateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setShopOwnerID(shopOwnerID),
	); err != nil {
		return UpdateDroneCommand{}, err
	}

	if model == nil && serialNumber == nil && capacityKg == nil && specs == nil {
		return UpdateDroneCommand{}, errs.NewValueIsRequiredErrorWithCause("body",
			errors.New("at least one field must be provided"))
	}

	cmd.model = model
	cmd.serialNumber = serialNumber
	cmd.capacityKg = capacityKg
	cmd.specs = specs

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneCommandIsNotConstructed)
}

// DroneID returns the drone to update.
func (c UpdateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopOwnerID returns the requesting shop owner.
func (c UpdateDroneCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

// Model returns the new model name, or nil to keep the current one.
func (c UpdateDroneCommand) Model() *string {
	return c.model
}

// SerialNumber returns the new serial number, or nil to keep the
// current one.
func (c UpdateDroneCommand) SerialNumber() *string {
	return c.serialNumber
}

// CapacityKg returns the new payload capacity, or nil to keep the
// current one.
func (c UpdateDroneCommand) CapacityKg() *float64 {
	return c.capacityKg
}

// Specifications returns the new airframe limits, or nil to keep the
// current ones.
func (c UpdateDroneCommand) Specifications() *drone.Specifications {
	return c.specs
}

func (c *UpdateDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *UpdateDroneCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}
