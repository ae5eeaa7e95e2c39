package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

func catalogItem(shopID, shopOwnerID kernel.UUID, price float64) ports.CatalogItem {
	return ports.CatalogItem{
		ID:          kernel.NewUUID(),
		Name:        "Pho Bo",
		Image:       "pho.jpg",
		Category:    "noodles",
		Price:       price,
		IsAvailable: true,
		ShopID:      shopID,
		ShopOwnerID: shopOwnerID,
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	shopID := kernel.NewUUID()
	shopOwnerID := kernel.NewUUID()
	itemA := catalogItem(shopID, shopOwnerID, 9.5)
	itemB := catalogItem(shopID, shopOwnerID, 4)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{
			{ItemID: itemA.ID, Quantity: 2},
			{ItemID: itemB.ID, Quantity: 1},
		},
		fixtureAddress(t), fixtureContact(t), order.PaymentMethodCash)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogReader").Return(catalog).Once(),
		catalog.On("GetItems", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]ports.CatalogItem{itemA, itemB}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, created.Status())
	assert.InDelta(t, 23, created.TotalAmount(), 0.0001) // 9.5*2 + 4
	assert.Len(t, created.Items(), 2)
	orderRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()

	shopID := kernel.NewUUID()
	shopOwnerID := kernel.NewUUID()
	known := catalogItem(shopID, shopOwnerID, 9.5)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{
			{ItemID: known.ID, Quantity: 1},
			{ItemID: kernel.NewUUID(), Quantity: 1},
		},
		fixtureAddress(t), fixtureContact(t), order.PaymentMethodCash)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogReader").Return(catalog).Once(),
		catalog.On("GetItems", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]ports.CatalogItem{known}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Add")
}

func TestCreateOrderCommandHandler_Handle_ItemSwitchedOff(t *testing.T) {
	ctx := t.Context()

	item := catalogItem(kernel.NewUUID(), kernel.NewUUID(), 9.5)
	item.IsAvailable = false

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{{ItemID: item.ID, Quantity: 1}},
		fixtureAddress(t), fixtureContact(t), order.PaymentMethodCash)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogReader").Return(catalog).Once(),
		catalog.On("GetItems", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]ports.CatalogItem{item}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, commands.ErrItemNotAvailable)
}

func TestCreateOrderCommandHandler_Handle_MixedShops(t *testing.T) {
	ctx := t.Context()

	itemA := catalogItem(kernel.NewUUID(), kernel.NewUUID(), 9.5)
	itemB := catalogItem(kernel.NewUUID(), kernel.NewUUID(), 4) // another shop

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{
			{ItemID: itemA.ID, Quantity: 1},
			{ItemID: itemB.ID, Quantity: 1},
		},
		fixtureAddress(t), fixtureContact(t), order.PaymentMethodCash)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogReader").Return(catalog).Once(),
		catalog.On("GetItems", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]ports.CatalogItem{itemA, itemB}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrMixedShopItems)
}

func TestCreateOrderCommand_Validation(t *testing.T) {
	address := fixtureAddress(t)
	contact := fixtureContact(t)
	line := commands.OrderLine{ItemID: kernel.NewUUID(), Quantity: 1}

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{},
		[]commands.OrderLine{line}, address, contact, order.PaymentMethodCash)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		nil, address, contact, order.PaymentMethodCash)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{{ItemID: kernel.NewUUID(), Quantity: 0}},
		address, contact, order.PaymentMethodCash)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{line}, address, contact, order.PaymentMethod("crypto"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
