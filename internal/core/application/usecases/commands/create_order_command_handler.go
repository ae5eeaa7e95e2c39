package commands

import (
	"context"
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

// ErrItemNotAvailable is the cause recorded when a cart references a
// menu item the shop has switched off.
var ErrItemNotAvailable = errors.New("item is not available")

// CreateOrderCommandHandler handles order placement. Resolves the cart
// against the catalog, snapshots every line item with the price at the
// moment of purchase, and persists the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory for catalog resolution and transactional
// persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. Every cart line must
// resolve to an existing, currently available catalog item, and all
// items must come from one shop; otherwise nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.resolveLines(ctx, uow.CatalogReader(), cmd.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), items,
		cmd.DeliveryAddress(), cmd.ContactInfo(), cmd.PaymentMethod(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) resolveLines(
	ctx context.Context,
	catalog ports.CatalogReader,
	lines []OrderLine,
) ([]order.LineItemSnapshot, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	catalogItems, err := catalog.GetItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]ports.CatalogItem, len(catalogItems))
	for _, item := range catalogItems {
		byID[item.ID] = item
	}

	snapshots := make([]order.LineItemSnapshot, 0, len(lines))
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("itemId", line.ItemID)
		}
		if !item.IsAvailable {
			return nil, errs.NewConflictErrorWithCause("itemId", line.ItemID.String(), ErrItemNotAvailable)
		}

		snapshot, err := order.NewLineItemSnapshot(item.ID, item.Name, item.Image,
			item.Category, item.Price, line.Quantity, item.ShopID, item.ShopOwnerID)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
