package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrCreateDroneCommandIsNotConstructed = errors.New(
	"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
)

// CreateDroneCommand represents a shop owner registering a new drone in
// their fleet.
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID      kernel.UUID
	shopID       kernel.UUID
	shopOwnerID  kernel.UUID
	model        string
	serialNumber string
	capacityKg   float64
	specs        drone.Specifications
	battery      kernel.Percent

	guard guard.ConstructorGuard
}

// NewCreateDroneCommand creates a command to register a drone.
func NewCreateDroneCommand(
	droneID kernel.UUID,
	shopID kernel.UUID,
	shopOwnerID kernel.UUID,
	model string,
	serialNumber string,
	capacityKg float64,
	specs drone.Specifications,
	battery kernel.Percent,
) (CreateDroneCommand, error) {
	cmd := CreateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setShopID(shopID),
		cmd.setShopOwnerID(shopOwnerID),
		cmd.setModel(model),
		cmd.setSerialNumber(serialNumber),
		cmd.setCapacity(capacityKg),
		cmd.setSpecifications(specs),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	cmd.battery = battery

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

// DroneID returns the identifier assigned to the new drone.
func (c CreateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopID returns the shop the drone will serve.
func (c CreateDroneCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ShopOwnerID returns the requesting shop owner.
func (c CreateDroneCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

// Model returns the airframe model name.
func (c CreateDroneCommand) Model() string {
	return c.model
}

// SerialNumber returns the fleet-wide unique serial number.
func (c CreateDroneCommand) SerialNumber() string {
	return c.serialNumber
}

// CapacityKg returns the payload capacity.
func (c CreateDroneCommand) CapacityKg() float64 {
	return c.capacityKg
}

// Specifications returns the airframe limits.
func (c CreateDroneCommand) Specifications() drone.Specifications {
	return c.specs
}

// Battery returns the battery level reported at registration.
func (c CreateDroneCommand) Battery() kernel.Percent {
	return c.battery
}

func (c *CreateDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *CreateDroneCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}

	c.shopID = shopID
	return nil
}

func (c *CreateDroneCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}

func (c *CreateDroneCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *CreateDroneCommand) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serialNumber")
	}

	c.serialNumber = serialNumber
	return nil
}

func (c *CreateDroneCommand) setCapacity(capacityKg float64) error {
	if capacityKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			errors.New("capacity must not be negative"))
	}

	c.capacityKg = capacityKg
	return nil
}

func (c *CreateDroneCommand) setSpecifications(specs drone.Specifications) error {
	if err := specs.Validate(); err != nil {
		return err
	}

	c.specs = specs
	return nil
}
