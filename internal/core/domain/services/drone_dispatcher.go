package services

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// ErrDroneShopMismatch is the cause recorded when a dispatch pairs an
// order with a drone registered to a different shop.
var ErrDroneShopMismatch = errors.New("drone belongs to a different shop")

// ErrDroneBatteryTooLow is the cause recorded when a dispatch picks a
// drone whose battery is below the dispatch threshold.
var ErrDroneBatteryTooLow = errors.New("drone battery is below the dispatch threshold")

// DroneDispatcher is a domain service that pairs a prepared order with a
// drone from the order's shop.
//
// Business rules:
//   - the order must be preparing and the drone available, active, and
//     at or above the dispatch battery threshold
//   - both aggregates must belong to the same shop
//   - on success the drone turns busy with its flight counter bumped and
//     the order turns delivering with the drone bound and its battery
//     snapshotted
//
// The dispatcher mutates both aggregates in memory; persisting them, and
// reacting to a persistence race, is the caller's concern.
type DroneDispatcher struct{}

// NewDroneDispatcher creates a new DroneDispatcher instance.
func NewDroneDispatcher() DroneDispatcher {
	return DroneDispatcher{}
}

// Dispatch binds the drone to the order and moves the order to
// delivering. Both aggregates are left unchanged when any rule fails.
func (d DroneDispatcher) Dispatch(ord *order.Order, drn *drone.Drone) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := drn.Validate(); err != nil {
		return err
	}

	if !drn.BelongsTo(ord.ShopID()) {
		return errs.NewConflictErrorWithCause("drone", drn.ID().String(), ErrDroneShopMismatch)
	}
	if drn.Battery().Value() < drone.MinDispatchBattery {
		return errs.NewConflictErrorWithCause("drone", drn.ID().String(), ErrDroneBatteryTooLow)
	}

	// the order transition is checked before the drone is touched so a
	// refusal leaves the drone untouched
	if err := ord.Status().EnsureTransition(order.Delivering); err != nil {
		return err
	}

	if err := drn.Assign(); err != nil {
		return err
	}

	if err := ord.StartDelivery(drn.ID(), drn.Battery()); err != nil {
		return err
	}

	return nil
}
