package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested cart position: a catalog item reference and
// a quantity. Prices and names are resolved from the catalog at handling
// time, never trusted from the caller.
type OrderLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to place a new order from a
// buyer's cart.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, lines,
//	    address, contact, order.PaymentMethodCash)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	lines           []OrderLine
	deliveryAddress order.DeliveryAddress
	contactInfo     order.ContactInfo
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, cart lines, delivery details, and the payment
// method. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	lines []OrderLine,
	deliveryAddress order.DeliveryAddress,
	contactInfo order.ContactInfo,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setLines(lines),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setContactInfo(contactInfo),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the buyer placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Lines returns the requested cart positions.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// DeliveryAddress returns the destination details.
func (c CreateOrderCommand) DeliveryAddress() order.DeliveryAddress {
	return c.deliveryAddress
}

// ContactInfo returns the recipient contact details.
func (c CreateOrderCommand) ContactInfo() order.ContactInfo {
	return c.contactInfo
}

// PaymentMethod returns how the buyer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("items.itemId", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("items.quantity",
				errors.New("quantity must be at least 1"))
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress order.DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setContactInfo(contactInfo order.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}

	c.contactInfo = contactInfo
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
