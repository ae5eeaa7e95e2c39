package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrConfirmOrderPaymentCommandIsNotConstructed = errors.New(
	"ConfirmOrderPaymentCommand must be created via NewConfirmOrderPaymentCommand constructor",
)

// ConfirmOrderPaymentCommand represents a successful payment report for
// a pending order, moving it to confirmed.
type ConfirmOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderPaymentCommand creates a command to confirm payment of
// the buyer's order.
func NewConfirmOrderPaymentCommand(orderID kernel.UUID, userID kernel.UUID) (ConfirmOrderPaymentCommand, error) {
	cmd := ConfirmOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return ConfirmOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment succeeded.
func (c ConfirmOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the buyer reporting the payment.
func (c ConfirmOrderPaymentCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ConfirmOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderPaymentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}
