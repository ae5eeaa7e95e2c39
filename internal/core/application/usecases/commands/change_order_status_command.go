package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// defaultShopCancelReason is recorded when the shop owner cancels
// without supplying one.
const defaultShopCancelReason = "Cancelled by shop owner"

// ChangeOrderStatusCommand represents a shop owner driving an order
// through its lifecycle: confirming, preparing, completing, or
// cancelling it.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	shopOwnerID  kernel.UUID
	target       order.Status
	cancelReason string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the
// target status. The cancel reason only applies when the target is
// cancelled; an empty reason falls back to a default.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	shopOwnerID kernel.UUID,
	target order.Status,
	cancelReason string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopOwnerID(shopOwnerID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if cancelReason == "" && target == order.Cancelled {
		cancelReason = defaultShopCancelReason
	}
	cmd.cancelReason = cancelReason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShopOwnerID returns the shop owner requesting the transition.
func (c ChangeOrderStatusCommand) ShopOwnerID() kernel.UUID {
	return c.shopOwnerID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// CancelReason returns the reason to record on cancellation.
func (c ChangeOrderStatusCommand) CancelReason() string {
	return c.cancelReason
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setShopOwnerID(shopOwnerID kernel.UUID) error {
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}

	c.shopOwnerID = shopOwnerID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
