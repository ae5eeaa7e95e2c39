package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	testOrder := fixtureOrder(t, userID, kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), userID, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.Equal(t, "Cancelled by user", testOrder.CancelReason())
	assert.NotNil(t, testOrder.CancelledAt())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureOrder(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_AlreadyPreparing(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	testOrder := fixtureOrder(t, userID, kernel.NewUUID(), kernel.NewUUID(), order.Preparing)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), userID, "changed my mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.ErrorIs(t, err, commands.ErrOrderAlreadyInPreparation)
	orderRepo.AssertNotCalled(t, "UpdateInStatus")
}

func TestConfirmOrderPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	testOrder := fixtureOrder(t, userID, kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	cmd, err := commands.NewConfirmOrderPaymentCommand(testOrder.ID(), userID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderPaymentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, testOrder.Status())
	assert.Equal(t, order.PaymentPaid, testOrder.PaymentStatus())
}

func TestConfirmOrderPaymentCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	testOrder := fixtureOrder(t, userID, kernel.NewUUID(), kernel.NewUUID(), order.Confirmed)

	cmd, err := commands.NewConfirmOrderPaymentCommand(testOrder.ID(), userID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderPaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
