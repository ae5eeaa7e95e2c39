package order

import (
	"errors"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> delivering ──> completed
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┴──> cancelled
//
// The preparing -> delivering transition is special: it is only performed
// through drone assignment (Order.StartDelivery), never by a plain status
// change.
//
// Statuses are persisted and transported as their string values.
type Status string

const (
	// Pending is the initial status of a freshly created order, waiting
	// for the payment collaborator to confirm it.
	Pending Status = "pending"

	// Confirmed indicates payment succeeded and the shop may start work.
	Confirmed Status = "confirmed"

	// Preparing indicates the shop is preparing the order. Only preparing
	// orders are eligible for drone assignment.
	Preparing Status = "preparing"

	// Delivering indicates a drone is exclusively bound to the order and
	// the delivery leg is in flight.
	Delivering Status = "delivering"

	// Completed is a terminal status: the order was delivered.
	Completed Status = "completed"

	// Cancelled is a terminal status reachable from every non-terminal one.
	Cancelled Status = "cancelled"
)

// ErrDroneAssignmentRequired explains why a plain status change to
// delivering is rejected.
var ErrDroneAssignmentRequired = errors.New("delivering requires a drone assignment")

// getValidStatuses returns the set of known statuses keyed for validation.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Confirmed:  {},
		Preparing:  {},
		Delivering: {},
		Completed:  {},
		Cancelled:  {},
	}
}

// getTransitions returns the allowed target statuses per source status.
// Terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Preparing, Cancelled},
		Preparing:  {Delivering, Cancelled},
		Delivering: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a caller-supplied status. Unknown values fail
// with a validation error before any transition is attempted.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the six known values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			errors.New(string(s)+" is not a valid order status"))
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// receiver to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// EnsureTransition validates both statuses and returns an
// InvalidTransitionError when the move is not in the transition table.
func (s Status) EnsureTransition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return nil
}

// ValidateCanHaveDrone checks the consistency between order status and the
// drone binding. Pre-delivery statuses must not reference a drone;
// delivering requires one; terminal statuses may keep the reference as a
// historical record of the delivery leg.
func (s Status) ValidateCanHaveDrone(hasDrone bool) error {
	switch s {
	case Pending, Confirmed, Preparing:
		if hasDrone {
			return errs.NewValueIsInvalidErrorWithCause("drone",
				errors.New(s.String()+" order must not reference a drone"))
		}
	case Delivering:
		if !hasDrone {
			return errs.NewValueIsInvalidErrorWithCause("drone",
				errors.New("delivering order must reference a drone"))
		}
	case Completed, Cancelled:
		// history retained, both states legal
	}
	return nil
}

// PaymentStatus tracks the payment collaborator's view of the order.
type PaymentStatus string

const (
	// PaymentPending means no successful payment was reported yet.
	PaymentPending PaymentStatus = "pending"
	// PaymentPaid means payment succeeded. Completed orders are forced paid.
	PaymentPaid PaymentStatus = "paid"
	// PaymentFailed means the payment collaborator reported a failure.
	PaymentFailed PaymentStatus = "failed"
)

// PaymentStatusFromString parses a stored or caller-supplied payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch status := PaymentStatus(s); status {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return status, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			errors.New(s+" is not a valid payment status"))
	}
}

// String returns the persisted string form of the payment status.
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentMethod is how the buyer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodMomo    PaymentMethod = "momo"
	PaymentMethodZalopay PaymentMethod = "zalopay"
)

// PaymentMethodFromString parses a payment method, defaulting empty input
// to cash the way the checkout flow does.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentMethodCash, nil
	}
	switch method := PaymentMethod(s); method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMomo, PaymentMethodZalopay:
		return method, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			errors.New(s+" is not a valid payment method"))
	}
}

// Validate checks the payment method against the supported set.
func (m PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(m))
	return err
}

// String returns the persisted string form of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}
