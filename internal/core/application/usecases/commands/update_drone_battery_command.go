package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrUpdateDroneBatteryCommandIsNotConstructed = errors.New(
	"UpdateDroneBatteryCommand must be created via NewUpdateDroneBatteryCommand constructor",
)

// UpdateDroneBatteryCommand represents a battery report for the drone
// currently carrying an order.
type UpdateDroneBatteryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	shopOwnerID kernel.UUID
	battery     kernel.Percent

	guard guard.ConstructorGuard
}

// NewUpdateDroneBatteryCommand creates a command to record a battery
// reading against a delivering order.
func NewUpdateDroneBatteryCommand(
	orderID kernel.UUID,
	shopOwnerID kernel.UUID,
	battery kernel.Percent,
) (UpdateDroneBatteryCommand, error) {
	cmd := UpdateDroneBatteryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopOwnerID(shopOwnerID),
	); err != nil {
		return UpdateDroneBatteryCommand{}, err
	}

	cmd.battery = battery

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneBatteryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneBatteryCommandIsNotConstructed)
}

// OrderID returns the delivering order the reading belongs to.
func (c UpdateDroneBatteryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShopOwnerID returns the shop owner reporting the reading.
func (c UpdateDroneBatteryCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

// Battery returns the reported battery level.
func (c UpdateDroneBatteryCommand) Battery() kernel.Percent {
	return c.battery
}

func (c *UpdateDroneBatteryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDroneBatteryCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}
