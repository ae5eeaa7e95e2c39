// Package guard provides the constructor-guard pattern used by domain
// value objects and aggregates. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so every object can insist on
// being built through its designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does
// not supply its own error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through a constructor
// from zero values. The zero value of the guard itself is "not
// constructed"; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	type Battery struct {
//	    percent int
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewBattery(percent int) (Battery, error) {
//	    ...
//	    return Battery{percent: percent, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b Battery) Validate() error {
//	    return b.guard.Validate(ErrBatteryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
