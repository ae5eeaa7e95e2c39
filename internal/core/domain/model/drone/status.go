package drone

import (
	"errors"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the fleet state of a drone.
//
// available <-> busy changes are driven exclusively by dispatch (assign
// and release); maintenance, offline, and retired are administrative
// overrides. Statuses are persisted and transported as their string
// values.
type Status string

const (
	// Available means the drone is idle and may be offered for dispatch.
	Available Status = "available"

	// Busy means the drone is exclusively bound to one delivering order.
	Busy Status = "busy"

	// Maintenance means the drone is grounded for service.
	Maintenance Status = "maintenance"

	// Offline means the drone is powered down or unreachable.
	Offline Status = "offline"

	// Retired means the drone left the fleet permanently.
	Retired Status = "retired"
)

// getValidStatuses returns the set of known fleet statuses.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Available:   {},
		Busy:        {},
		Maintenance: {},
		Offline:     {},
		Retired:     {},
	}
}

// StatusFromString parses a caller-supplied fleet status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known fleet states.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("droneStatus",
			errors.New(string(s)+" is not a valid drone status"))
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}
