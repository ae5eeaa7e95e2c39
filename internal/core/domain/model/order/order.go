package order

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// estimatedDeliveryMinutes is the coarse delivery estimate promised to the
// buyer at checkout.
const estimatedDeliveryMinutes = 35

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrMixedShopItems is returned when a cart spans more than one shop.
	// Dispatch binds exactly one drone of one shop to an order, so orders
	// are single-shop by construction.
	ErrMixedShopItems = errors.New("order items must belong to a single shop")
)

// Order is the aggregate root of the order ledger. It owns the line-item
// snapshots, the payment state, the order status machine, and the drone
// binding of the delivery leg.
//
// Invariants maintained by the aggregate:
//   - at least one line item, all belonging to the same shop
//   - totalAmount equals the sum of line-item subtotals
//   - status transitions follow the table in Status
//   - the drone reference appears exactly on the preparing -> delivering
//     transition and is retained afterwards as history
//   - a completed order is always paid
type Order struct {
	id                    kernel.UUID
	userID                kernel.UUID
	items                 []LineItemSnapshot
	totalAmount           float64
	deliveryAddress       DeliveryAddress
	contactInfo           ContactInfo
	paymentMethod         PaymentMethod
	paymentStatus         PaymentStatus
	status                Status
	droneID               *kernel.UUID
	droneBattery          kernel.Percent
	estimatedDeliveryTime time.Time
	createdAt             time.Time
	deliveredAt           *time.Time
	cancelledAt           *time.Time
	cancelReason          string
	guard                 guard.ConstructorGuard
}

// NewOrder creates a pending order from resolved line-item snapshots.
//
// Business rules:
//   - id and userID must be valid
//   - items must be non-empty, each a constructed snapshot, and all from
//     the same shop (mixed-shop carts are rejected)
//   - deliveryAddress and contactInfo must be constructed
//   - totalAmount is computed from the snapshots
//   - estimated delivery time is now + 35 minutes
//   - status starts at pending, payment status at pending
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []LineItemSnapshot,
	deliveryAddress DeliveryAddress,
	contactInfo ContactInfo,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setContactInfo(contactInfo),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.createdAt = now
	o.estimatedDeliveryTime = now.Add(estimatedDeliveryMinutes * time.Minute)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its drone binding and terminal timestamps. The restored order
// behaves identically to one built through domain operations.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []LineItemSnapshot,
	deliveryAddress DeliveryAddress,
	contactInfo ContactInfo,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	droneID *kernel.UUID,
	droneBattery kernel.Percent,
	estimatedDeliveryTime time.Time,
	createdAt time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	cancelReason string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setContactInfo(contactInfo),
		o.setPaymentMethod(paymentMethod),
		status.Validate(),
		status.ValidateCanHaveDrone(droneID != nil),
	); err != nil {
		return nil, err
	}

	if droneID != nil {
		if err := droneID.Validate(); err != nil {
			return nil, err
		}
		droneCopy := *droneID
		o.droneID = &droneCopy
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.droneBattery = droneBattery
	o.estimatedDeliveryTime = estimatedDeliveryTime
	o.createdAt = createdAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	o.cancelReason = cancelReason

	return o, nil
}

// Validate ensures the Order was properly constructed and its cross-field
// invariants hold.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	return o.status.ValidateCanHaveDrone(o.droneID != nil)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the buyer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the line-item snapshots in their original order.
func (o *Order) Items() []LineItemSnapshot {
	items := make([]LineItemSnapshot, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of all line-item subtotals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the destination of the order.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// ContactInfo returns the delivery contact.
func (o *Order) ContactInfo() ContactInfo {
	return o.contactInfo
}

// PaymentMethod returns how the buyer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the payment collaborator's view of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Drone returns the bound drone's ID, or nil if the order never reached
// delivering. The reference survives completion and cancellation as a
// historical record.
func (o *Order) Drone() *kernel.UUID {
	if o.droneID == nil {
		return nil
	}
	droneCopy := *o.droneID
	return &droneCopy
}

// DroneBattery returns the last battery reading reported for this order's
// delivery leg. Meaningful only while Drone() is non-nil.
func (o *Order) DroneBattery() kernel.Percent {
	return o.droneBattery
}

// EstimatedDeliveryTime returns the delivery estimate set at creation.
func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns when the order completed, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancelReason returns the stored cancellation reason, empty unless
// cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// ShopID returns the shop all line items belong to. Safe because orders
// are single-shop by construction.
func (o *Order) ShopID() kernel.UUID {
	return o.items[0].ShopID()
}

// ShopOwnerID returns the owner of the order's shop.
func (o *Order) ShopOwnerID() kernel.UUID {
	return o.items[0].ShopOwnerID()
}

// IsOwnedBy reports whether userID is the buyer of this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// IsManagedBy reports whether ownerID owns the shop of at least one line
// item. This is the shop-owner scope used by dispatch operations.
func (o *Order) IsManagedBy(ownerID kernel.UUID) bool {
	for _, item := range o.items {
		if item.ShopOwnerID().IsEqual(ownerID) {
			return true
		}
	}
	return false
}

// ConfirmPayment applies the payment collaborator's success signal:
// pending -> confirmed together with paymentStatus = paid.
func (o *Order) ConfirmPayment() error {
	if err := o.status.EnsureTransition(Confirmed); err != nil {
		return err
	}
	o.status = Confirmed
	o.paymentStatus = PaymentPaid
	return nil
}

// StartPreparing moves a confirmed order into preparation.
func (o *Order) StartPreparing() error {
	if err := o.status.EnsureTransition(Preparing); err != nil {
		return err
	}
	o.status = Preparing
	return nil
}

// StartDelivery binds a drone to the order and advances it to delivering.
// This is the only way an order acquires a drone, and the only way it
// reaches delivering. The battery value is the drone's reading at
// assignment time and becomes the authoritative record for this leg.
func (o *Order) StartDelivery(droneID kernel.UUID, battery kernel.Percent) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	if o.status != Preparing {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Delivering.String(),
			errors.New("order must be preparing"))
	}

	o.status = Delivering
	o.droneID = &droneID
	o.droneBattery = battery
	return nil
}

// ReportDroneBattery records a new battery reading for the delivery leg.
// Only legal while the order is delivering with a bound drone.
func (o *Order) ReportDroneBattery(battery kernel.Percent) error {
	if o.status != Delivering || o.droneID == nil {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Delivering.String(),
			errors.New("order has no active delivery leg"))
	}
	o.droneBattery = battery
	return nil
}

// Complete marks the order delivered: delivering -> completed, stamps
// deliveredAt, and forces the payment status to paid. The drone reference
// is kept; releasing the drone itself is the dispatch coordinator's job.
func (o *Order) Complete(now time.Time) error {
	if err := o.status.EnsureTransition(Completed); err != nil {
		return err
	}
	o.status = Completed
	deliveredAt := now
	o.deliveredAt = &deliveredAt
	o.paymentStatus = PaymentPaid
	return nil
}

// Cancel moves the order to cancelled from any non-terminal status,
// stamping cancelledAt and the reason. Callers supply their own default
// reason ("Cancelled by user" for buyers, "Cancelled by shop owner" for
// shops). The drone reference, if any, is kept as history.
func (o *Order) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}
	if err := o.status.EnsureTransition(Cancelled); err != nil {
		return err
	}
	o.status = Cancelled
	cancelledAt := now
	o.cancelledAt = &cancelledAt
	o.cancelReason = reason
	return nil
}

// ChangeStatus applies a shop-owner driven status change. The target must
// be a known status; delivering is rejected because that transition only
// happens through drone assignment. Cancellation uses the supplied reason.
func (o *Order) ChangeStatus(target Status, cancelReason string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case Confirmed:
		return o.ConfirmPayment()
	case Preparing:
		return o.StartPreparing()
	case Delivering:
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Delivering.String(),
			ErrDroneAssignmentRequired)
	case Completed:
		return o.Complete(now)
	case Cancelled:
		return o.Cancel(cancelReason, now)
	case Pending:
		return errs.NewInvalidTransitionError(o.status.String(), Pending.String())
	}

	return errs.NewValueIsInvalidError("orderStatus")
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []LineItemSnapshot) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderItems")
	}

	total := 0.0
	shopID := items[0].ShopID()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.ShopID().IsEqual(shopID) {
			return errs.NewValueIsInvalidErrorWithCause("orderItems", ErrMixedShopItems)
		}
		total += item.Subtotal()
	}

	o.items = make([]LineItemSnapshot, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

func (o *Order) setDeliveryAddress(address DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setContactInfo(contact ContactInfo) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contactInfo = contact
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if _, err := PaymentMethodFromString(method.String()); err != nil {
		return err
	}
	if method == "" {
		method = PaymentMethodCash
	}
	o.paymentMethod = method
	return nil
}
