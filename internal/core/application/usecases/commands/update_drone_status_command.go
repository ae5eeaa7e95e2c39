package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrUpdateDroneStatusCommandIsNotConstructed = errors.New(
		"UpdateDroneStatusCommand must be created via NewUpdateDroneStatusCommand constructor",
	)

	// ErrBusyIsDispatchOnly rejects manual attempts to mark a drone
	// busy. Busy is entered only through order assignment.
	ErrBusyIsDispatchOnly = errors.New("busy is set by dispatch, not manually")
)

// UpdateDroneStatusCommand represents a shop owner parking a drone in
// maintenance, offline, retired, or returning it to available.
type UpdateDroneStatusCommand struct { //nolint:recvcheck //using for validation
	droneID     kernel.UUID
	shopOwnerID kernel.UUID
	target      drone.Status

	guard guard.ConstructorGuard
}

// NewUpdateDroneStatusCommand creates a command to change a drone's
// fleet status. Busy is refused: it belongs to the dispatch path.
func NewUpdateDroneStatusCommand(
	droneID kernel.UUID,
	shopOwnerID kernel.UUID,
	target drone.Status,
) (UpdateDroneStatusCommand, error) {
	cmd := UpdateDroneStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setShopOwnerID(shopOwnerID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateDroneStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneStatusCommandIsNotConstructed)
}

// DroneID returns the drone to update.
func (c UpdateDroneStatusCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopOwnerID returns the requesting shop owner.
func (c UpdateDroneStatusCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

// Target returns the requested fleet status.
func (c UpdateDroneStatusCommand) Target() drone.Status {
	return c.target
}

func (c *UpdateDroneStatusCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *UpdateDroneStatusCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}

func (c *UpdateDroneStatusCommand) setTarget(target drone.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == drone.Busy {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrBusyIsDispatchOnly)
	}

	c.target = target
	return nil
}
