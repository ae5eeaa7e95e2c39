package order

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using an improperly
// initialized LineItemSnapshot.
var ErrLineItemIsNotConstructed = errors.New(
	"LineItemSnapshot must be created via NewLineItemSnapshot constructor")

// LineItemSnapshot is one entry of an order: a quantity of a catalog item
// at its price at order time, together with a denormalized copy of the
// item and shop data. The snapshot is captured once at order creation and
// never re-reads the catalog afterwards, so later catalog edits cannot
// change what the buyer agreed to pay.
//
// LineItemSnapshot is immutable; subtotal is derived from price and
// quantity at construction time.
type LineItemSnapshot struct {
	itemID      kernel.UUID
	name        string
	image       string
	category    string
	price       float64
	quantity    int
	subtotal    float64
	shopID      kernel.UUID
	shopOwnerID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewLineItemSnapshot captures a catalog item into an order line.
//
// Business rules:
//   - item, shop, and shop owner identifiers must be valid
//   - name must be non-empty
//   - price must not be negative
//   - quantity must be at least 1
//   - subtotal is computed as price * quantity
func NewLineItemSnapshot(
	itemID kernel.UUID,
	name string,
	image string,
	category string,
	price float64,
	quantity int,
	shopID kernel.UUID,
	shopOwnerID kernel.UUID,
) (LineItemSnapshot, error) {
	item := LineItemSnapshot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setShop(shopID, shopOwnerID),
	); err != nil {
		return LineItemSnapshot{}, err
	}

	item.image = image
	item.category = category
	item.subtotal = item.price * float64(item.quantity)

	return item, nil
}

// ItemID returns the identifier of the catalog item at snapshot time.
func (l LineItemSnapshot) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name at snapshot time.
func (l LineItemSnapshot) Name() string {
	return l.name
}

// Image returns the item image reference at snapshot time.
func (l LineItemSnapshot) Image() string {
	return l.image
}

// Category returns the item category at snapshot time.
func (l LineItemSnapshot) Category() string {
	return l.category
}

// Price returns the per-unit price at snapshot time.
func (l LineItemSnapshot) Price() float64 {
	return l.price
}

// Quantity returns the ordered quantity.
func (l LineItemSnapshot) Quantity() int {
	return l.quantity
}

// Subtotal returns price * quantity.
func (l LineItemSnapshot) Subtotal() float64 {
	return l.subtotal
}

// ShopID returns the owning shop of the item at snapshot time.
func (l LineItemSnapshot) ShopID() kernel.UUID {
	return l.shopID
}

// ShopOwnerID returns the owner of the shop at snapshot time. Shop-owner
// scoped reads and mutations match against this value.
func (l LineItemSnapshot) ShopOwnerID() kernel.UUID {
	return l.shopOwnerID
}

// Validate ensures the snapshot was created through the constructor.
func (l LineItemSnapshot) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItemSnapshot) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *LineItemSnapshot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *LineItemSnapshot) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must not be negative"))
	}
	l.price = price
	return nil
}

func (l *LineItemSnapshot) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be at least 1"))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItemSnapshot) setShop(shopID kernel.UUID, shopOwnerID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	if err := shopOwnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopOwnerId", err)
	}
	l.shopID = shopID
	l.shopOwnerID = shopOwnerID
	return nil
}
