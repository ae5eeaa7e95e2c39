package order

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when using an improperly
// initialized DeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor")

// DeliveryAddress is the destination of an order: a postal address string,
// its city, validated coordinates for the drone, and an optional note for
// the delivery.
type DeliveryAddress struct {
	address     string
	city        string
	coordinates kernel.GeoPoint
	note        string
	guard       guard.ConstructorGuard
}

// NewDeliveryAddress creates a DeliveryAddress. The address string, city,
// and coordinates are required.
func NewDeliveryAddress(address string, city string, coordinates kernel.GeoPoint, note string) (DeliveryAddress, error) {
	if address == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("deliveryAddress.address")
	}
	if city == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("deliveryAddress.city")
	}
	if err := coordinates.Validate(); err != nil {
		return DeliveryAddress{}, errs.NewValueIsRequiredErrorWithCause("deliveryAddress.coordinates", err)
	}

	return DeliveryAddress{
		address:     address,
		city:        city,
		coordinates: coordinates,
		note:        note,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Address returns the postal address string.
func (a DeliveryAddress) Address() string {
	return a.address
}

// City returns the city of the destination.
func (a DeliveryAddress) City() string {
	return a.city
}

// Coordinates returns the destination coordinates.
func (a DeliveryAddress) Coordinates() kernel.GeoPoint {
	return a.coordinates
}

// Note returns the optional delivery note.
func (a DeliveryAddress) Note() string {
	return a.note
}

// Validate ensures the address was created through the constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// ErrContactInfoIsNotConstructed is returned when using an improperly
// initialized ContactInfo.
var ErrContactInfoIsNotConstructed = errors.New(
	"ContactInfo must be created via NewContactInfo constructor")

// ContactInfo is who to reach about the delivery. Name and phone are
// required; email is optional.
type ContactInfo struct {
	name  string
	phone string
	email string
	guard guard.ConstructorGuard
}

// NewContactInfo creates a ContactInfo with a required name and phone.
func NewContactInfo(name string, phone string, email string) (ContactInfo, error) {
	if name == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contactInfo.name")
	}
	if phone == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contactInfo.phone")
	}

	return ContactInfo{
		name:  name,
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the contact name.
func (c ContactInfo) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c ContactInfo) Phone() string {
	return c.phone
}

// Email returns the optional contact email.
func (c ContactInfo) Email() string {
	return c.email
}

// Validate ensures the contact info was created through the constructor.
func (c ContactInfo) Validate() error {
	return c.guard.Validate(ErrContactInfoIsNotConstructed)
}
