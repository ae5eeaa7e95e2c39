package commands

import (
	"context"
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// ErrOrderAlreadyInPreparation is the cause recorded when a buyer tries
// to cancel an order the shop already started working on.
var ErrOrderAlreadyInPreparation = errors.New("buyer may cancel only pending or confirmed orders")

// CancelOrderCommandHandler handles buyer-side cancellation. Buyers can
// withdraw an order only while it is pending or confirmed; once the shop
// starts preparing, cancellation belongs to the shop owner.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for buyer cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. The order must belong to the
// requesting buyer; orders of other buyers are reported as not found so
// identifiers cannot be probed. The write is conditional on the status
// read, so a racing shop-side transition wins at most once.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.IsOwnedBy(cmd.UserID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if ord.Status() != order.Pending && ord.Status() != order.Confirmed {
		return errs.NewInvalidTransitionErrorWithCause(
			ord.Status().String(), order.Cancelled.String(), ErrOrderAlreadyInPreparation)
	}

	previous := ord.Status()
	if err = ord.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
