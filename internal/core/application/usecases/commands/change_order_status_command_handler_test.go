package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// deliveringFixture returns an order in delivering status bound to the
// returned busy drone, with the given last reported leg battery.
func deliveringFixture(
	t *testing.T,
	shopOwnerID kernel.UUID,
	legBattery int,
) (*order.Order, *drone.Drone) {
	t.Helper()

	shopID := kernel.NewUUID()
	ord := fixtureOrder(t, kernel.NewUUID(), shopID, shopOwnerID, order.Preparing)
	drn := fixtureDrone(t, shopID, 90)

	require.NoError(t, drn.Assign())
	require.NoError(t, ord.StartDelivery(drn.ID(), drn.Battery()))
	require.NoError(t, ord.ReportDroneBattery(percentOf(t, legBattery)))

	return ord, drn
}

func TestChangeOrderStatusCommandHandler_Handle_Confirm(t *testing.T) {
	ctx := t.Context()

	shopOwnerID := kernel.NewUUID()
	testOrder := fixtureOrder(t, kernel.NewUUID(), kernel.NewUUID(), shopOwnerID, order.Pending)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), shopOwnerID, order.Confirmed, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, testOrder.Status())
	assert.Equal(t, order.PaymentPaid, testOrder.PaymentStatus())
	orderRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CompleteReleasesDroneWithLegBattery(t *testing.T) {
	ctx := t.Context()

	shopOwnerID := kernel.NewUUID()
	testOrder, testDrone := deliveringFixture(t, shopOwnerID, 37)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), shopOwnerID, order.Completed, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivering).
			Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*drone.Drone"), drone.Busy).
			Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, drone.Available, testDrone.Status())
	// completed delivery carries the leg battery onto the drone record
	assert.Equal(t, 37, testDrone.Battery().Value())
	orderRepo.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelKeepsDroneBattery(t *testing.T) {
	ctx := t.Context()

	shopOwnerID := kernel.NewUUID()
	testOrder, testDrone := deliveringFixture(t, shopOwnerID, 37)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), shopOwnerID, order.Cancelled, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivering).
			Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*drone.Drone"), drone.Busy).
			Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.Equal(t, "Cancelled by shop owner", testOrder.CancelReason())
	assert.Equal(t, drone.Available, testDrone.Status())
	// cancellation does not touch the drone's own reading
	assert.Equal(t, 90, testDrone.Battery().Value())
}

func TestChangeOrderStatusCommandHandler_Handle_ReleaseFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()

	shopOwnerID := kernel.NewUUID()
	testOrder, testDrone := deliveringFixture(t, shopOwnerID, 37)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), shopOwnerID, order.Completed, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivering).
			Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).
			Return(nil, errs.NewObjectNotFoundError("droneId", testDrone.ID())).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())

	// the order transition stands even when the release leg fails
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, order.Completed, testOrder.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveringRejected(t *testing.T) {
	shopOwnerID := kernel.NewUUID()

	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), shopOwnerID, order.Status("flying"), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	ctx := t.Context()
	testOrder := fixtureOrder(t, kernel.NewUUID(), kernel.NewUUID(), shopOwnerID, order.Preparing)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), shopOwnerID, order.Delivering, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	// delivering is entered through drone assignment, not a plain change
	require.ErrorIs(t, err, order.ErrDroneAssignmentRequired)
	orderRepo.AssertNotCalled(t, "UpdateInStatus")
}

func TestChangeOrderStatusCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureOrder(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	requesterID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), requesterID, order.Confirmed, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
