package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrAssignDroneCommandIsNotConstructed = errors.New(
	"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
)

// AssignDroneCommand represents a shop owner dispatching one of their
// drones to carry a prepared order.
type AssignDroneCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	droneID     kernel.UUID
	shopOwnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to bind a drone to an order.
func NewAssignDroneCommand(
	orderID kernel.UUID,
	droneID kernel.UUID,
	shopOwnerID kernel.UUID,
) (AssignDroneCommand, error) {
	cmd := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDroneID(droneID),
		cmd.setShopOwnerID(shopOwnerID),
	); err != nil {
		return AssignDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c AssignDroneCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DroneID returns the drone to dispatch.
func (c AssignDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopOwnerID returns the shop owner requesting the dispatch.
func (c AssignDroneCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

func (c *AssignDroneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("droneId", err)
	}

	c.droneID = droneID
	return nil
}

func (c *AssignDroneCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}
