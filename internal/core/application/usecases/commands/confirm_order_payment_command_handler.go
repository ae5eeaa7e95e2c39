package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// ConfirmOrderPaymentCommandHandler moves a pending order to confirmed
// once its payment is reported successful.
type ConfirmOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderPaymentCommandHandler creates a handler for payment
// confirmation.
func NewConfirmOrderPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderPaymentCommandHandler {
	return ConfirmOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. The order must belong to the
// reporting buyer and still be pending; the write is conditional on the
// pending status so a racing cancellation wins at most once.
func (h ConfirmOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderPaymentCommand) error {
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

	if err = ord.ConfirmPayment(); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.Pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
