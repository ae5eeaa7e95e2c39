package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrUpdateDroneLocationCommandIsNotConstructed = errors.New(
	"UpdateDroneLocationCommand must be created via NewUpdateDroneLocationCommand constructor",
)

// UpdateDroneLocationCommand represents a telemetry report from a drone:
// its position, altitude, and optionally a battery reading.
type UpdateDroneLocationCommand struct { //nolint:recvcheck //using for validation
	droneID   kernel.UUID
	position  kernel.GeoPoint
	altitudeM float64
	battery   *kernel.Percent

	guard guard.ConstructorGuard
}

// NewUpdateDroneLocationCommand creates a command to record a telemetry
// report. A nil battery keeps the drone's last known reading.
func NewUpdateDroneLocationCommand(
	droneID kernel.UUID,
	position kernel.GeoPoint,
	altitudeM float64,
	battery *kernel.Percent,
) (UpdateDroneLocationCommand, error) {
	cmd := UpdateDroneLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setPosition(position),
	); err != nil {
		return UpdateDroneLocationCommand{}, err
	}

	cmd.altitudeM = altitudeM
	cmd.battery = battery

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneLocationCommandIsNotConstructed)
}

// DroneID returns the reporting drone.
func (c UpdateDroneLocationCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Position returns the reported coordinates.
func (c UpdateDroneLocationCommand) Position() kernel.GeoPoint {
	return c.position
}

// AltitudeM returns the reported altitude in meters.
func (c UpdateDroneLocationCommand) AltitudeM() float64 {
	return c.altitudeM
}

// Battery returns the reported battery level, or nil when the report
// carried none.
func (c UpdateDroneLocationCommand) Battery() *kernel.Percent {
	return c.battery
}

func (c *UpdateDroneLocationCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *UpdateDroneLocationCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
