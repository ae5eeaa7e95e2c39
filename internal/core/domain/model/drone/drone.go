package drone

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// MinDispatchBattery is the minimum battery percentage at which a drone
// may be offered for a new assignment. Drones below this threshold stay
// in the pool but are never listed as available for dispatch.
const MinDispatchBattery = 30

var (
	// ErrDroneIsNotConstructed is returned when using an improperly
	// initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone constructor")

	// ErrDroneNotAvailable is the cause recorded when an assignment hits
	// a drone that is not in the available status.
	ErrDroneNotAvailable = errors.New("drone is not available")

	// ErrDroneBusy is the cause recorded when an operation is refused
	// because the drone is mid-delivery.
	ErrDroneBusy = errors.New("drone is busy with a delivery")
)

// Specifications describes the airframe limits of a drone. Plain data
// captured at registration; validated to be non-negative.
type Specifications struct {
	MaxSpeedKmh  float64
	MaxAltitudeM float64
	MaxRangeKm   float64
}

// Validate checks that no specification is negative.
func (s Specifications) Validate() error {
	if s.MaxSpeedKmh < 0 || s.MaxAltitudeM < 0 || s.MaxRangeKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("specifications",
			errors.New("specifications must not be negative"))
	}
	return nil
}

// Telemetry is the last reported position of a drone. Reports are
// accepted at face value; the registry only stores them.
type Telemetry struct {
	Position    kernel.GeoPoint
	AltitudeM   float64
	LastUpdated time.Time
}

// Drone is the aggregate root of the fleet registry. It manages identity,
// shop association, fleet status, battery state, telemetry, flight
// statistics, and the soft-delete flag.
//
// Invariants maintained together with the dispatch coordinator:
//   - busy exactly while bound to one delivering order
//   - totalFlights increments exactly once per assignment
//   - an inactive drone never appears in fleet listings or availability
//     queries, but keeps serving as a historical reference
type Drone struct {
	id           kernel.UUID
	shopID       kernel.UUID
	model        string
	serialNumber string
	capacityKg   float64
	specs        Specifications
	status       Status
	battery      kernel.Percent
	telemetry    *Telemetry
	totalFlights int
	isActive     bool
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewDrone registers a new drone for a shop. The drone starts available
// and active with the reported battery level. Serial-number uniqueness is
// the registry's responsibility, not the aggregate's.
func NewDrone(
	id kernel.UUID,
	shopID kernel.UUID,
	model string,
	serialNumber string,
	capacityKg float64,
	specs Specifications,
	battery kernel.Percent,
	now time.Time,
) (*Drone, error) {
	d := &Drone{
		status:   Available,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShopID(shopID),
		d.setModel(model),
		d.setSerialNumber(serialNumber),
		d.setCapacity(capacityKg),
		d.setSpecifications(specs),
	); err != nil {
		return nil, err
	}

	d.battery = battery
	d.createdAt = now

	return d, nil
}

// RestoreDrone reconstructs a Drone aggregate from persistent storage.
func RestoreDrone(
	id kernel.UUID,
	shopID kernel.UUID,
	model string,
	serialNumber string,
	capacityKg float64,
	specs Specifications,
	status Status,
	battery kernel.Percent,
	telemetry *Telemetry,
	totalFlights int,
	isActive bool,
	createdAt time.Time,
) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShopID(shopID),
		d.setModel(model),
		d.setSerialNumber(serialNumber),
		d.setCapacity(capacityKg),
		d.setSpecifications(specs),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalFlights < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalFlights",
			errors.New("flight counter must not be negative"))
	}

	d.status = status
	d.battery = battery
	if telemetry != nil {
		telemetryCopy := *telemetry
		d.telemetry = &telemetryCopy
	}
	d.totalFlights = totalFlights
	d.isActive = isActive
	d.createdAt = createdAt

	return d, nil
}

// Validate ensures the Drone was properly constructed.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares two drones by their unique identifiers.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone's unique identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// ShopID returns the owning shop.
func (d *Drone) ShopID() kernel.UUID {
	return d.shopID
}

// Model returns the airframe model name.
func (d *Drone) Model() string {
	return d.model
}

// SerialNumber returns the fleet-wide unique serial number.
func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

// CapacityKg returns the payload capacity in kilograms.
func (d *Drone) CapacityKg() float64 {
	return d.capacityKg
}

// Specifications returns the airframe limits.
func (d *Drone) Specifications() Specifications {
	return d.specs
}

// Status returns the current fleet status.
func (d *Drone) Status() Status {
	return d.status
}

// Battery returns the last known battery reading.
func (d *Drone) Battery() kernel.Percent {
	return d.battery
}

// Telemetry returns a copy of the last reported position, or nil if the
// drone never reported.
func (d *Drone) Telemetry() *Telemetry {
	if d.telemetry == nil {
		return nil
	}
	telemetryCopy := *d.telemetry
	return &telemetryCopy
}

// TotalFlights returns how many assignments this drone has flown.
func (d *Drone) TotalFlights() int {
	return d.totalFlights
}

// IsActive reports whether the drone is part of the visible fleet.
func (d *Drone) IsActive() bool {
	return d.isActive
}

// CreatedAt returns the registration timestamp.
func (d *Drone) CreatedAt() time.Time {
	return d.createdAt
}

// BelongsTo reports whether the drone serves the given shop.
func (d *Drone) BelongsTo(shopID kernel.UUID) bool {
	return d.shopID.IsEqual(shopID)
}

// IsDispatchable reports whether the drone may be offered for a new
// assignment: active, available, and at or above the battery threshold.
func (d *Drone) IsDispatchable(minBattery int) bool {
	return d.isActive && d.status == Available && d.battery.Value() >= minBattery
}

// Assign takes the drone for a delivery leg: available -> busy with the
// flight counter incremented exactly once. Fails with a conflict error
// when the drone is inactive or not available, leaving it unchanged.
func (d *Drone) Assign() error {
	if !d.isActive {
		return errs.NewConflictErrorWithCause("drone", d.id.String(),
			errors.New("drone is deactivated"))
	}
	if d.status != Available {
		return errs.NewConflictErrorWithCause("drone", d.id.String(), ErrDroneNotAvailable)
	}

	d.status = Busy
	d.totalFlights++
	return nil
}

// Release returns the drone to the pool when its bound order reached a
// terminal status. A completed delivery passes the last reported leg
// battery so the drone does not magically recharge; a cancellation passes
// nil and leaves the battery untouched.
func (d *Drone) Release(battery *kernel.Percent) error {
	if d.status != Busy {
		return errs.NewConflictErrorWithCause("drone", d.id.String(),
			errors.New("drone is not busy"))
	}

	d.status = Available
	if battery != nil {
		d.battery = *battery
	}
	return nil
}

// ReportBattery stores a new battery reading. Used both by telemetry
// updates and by the battery mirror of an active delivery leg.
func (d *Drone) ReportBattery(battery kernel.Percent) {
	d.battery = battery
}

// RecordTelemetry stores a position report, merging the battery reading
// when one is provided and keeping the prior value otherwise. The
// lastUpdated stamp is always refreshed.
func (d *Drone) RecordTelemetry(position kernel.GeoPoint, altitudeM float64, battery *kernel.Percent, now time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}

	d.telemetry = &Telemetry{
		Position:    position,
		AltitudeM:   altitudeM,
		LastUpdated: now,
	}
	if battery != nil {
		d.battery = *battery
	}
	return nil
}

// OverrideStatus applies an administrative status change without checking
// the busy/order linkage. Callers own the consequences; the fleet
// reconciliation sweep repairs drones orphaned this way.
func (d *Drone) OverrideStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// Deactivate soft-deletes the drone. Refused while busy: a drone cannot
// be removed mid-delivery.
func (d *Drone) Deactivate() error {
	if d.status == Busy {
		return errs.NewConflictErrorWithCause("drone", d.id.String(), ErrDroneBusy)
	}
	d.isActive = false
	return nil
}

// ChangeModel updates the airframe model name.
func (d *Drone) ChangeModel(model string) error {
	return d.setModel(model)
}

// ChangeSerialNumber updates the serial number. Fleet-wide uniqueness is
// re-checked by the registry before the change is persisted.
func (d *Drone) ChangeSerialNumber(serialNumber string) error {
	return d.setSerialNumber(serialNumber)
}

// ChangeCapacity updates the payload capacity.
func (d *Drone) ChangeCapacity(capacityKg float64) error {
	return d.setCapacity(capacityKg)
}

// ChangeSpecifications updates the airframe limits.
func (d *Drone) ChangeSpecifications(specs Specifications) error {
	return d.setSpecifications(specs)
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	d.shopID = shopID
	return nil
}

func (d *Drone) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	d.model = model
	return nil
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serialNumber")
	}
	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setCapacity(capacityKg float64) error {
	if capacityKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			errors.New("capacity must not be negative"))
	}
	d.capacityKg = capacityKg
	return nil
}

func (d *Drone) setSpecifications(specs Specifications) error {
	if err := specs.Validate(); err != nil {
		return err
	}
	d.specs = specs
	return nil
}
