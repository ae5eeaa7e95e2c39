package kernel

import (
	"fmt"

	"dronedelivery/internal/pkg/errs"
)

const (
	// PercentMin is the lowest valid percentage value.
	PercentMin = 0
	// PercentMax is the highest valid percentage value.
	PercentMax = 100
)

// Percent is an integer percentage clamped to [0, 100]. It carries drone
// battery readings through the domain so an out-of-range report can never
// reach an aggregate.
//
// Unlike the guarded value objects, the zero value of Percent is a valid
// reading of 0%.
type Percent int

// NewPercent creates a Percent, rejecting values outside [0, 100].
func NewPercent(value int) (Percent, error) {
	if value < PercentMin || value > PercentMax {
		return 0, errs.NewValueIsOutOfRangeError("percentage", value, PercentMin, PercentMax)
	}
	return Percent(value), nil
}

// Value returns the percentage as a plain int.
func (p Percent) Value() int {
	return int(p)
}

// String implements fmt.Stringer.
func (p Percent) String() string {
	return fmt.Sprintf("%d%%", int(p))
}
