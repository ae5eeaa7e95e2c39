package commands_test

import (
	"bytes"
	"log/slog"
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

func TestReconcileFleetCommandHandler_Handle_ReclaimsOrphans(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileFleetCommand()

	shopID := kernel.NewUUID()
	shopOwnerID := kernel.NewUUID()

	// heldDrone is legitimately carrying heldOrder; orphanDrone is busy
	// with no delivering order behind it
	heldOrder := fixtureOrder(t, kernel.NewUUID(), shopID, shopOwnerID, order.Preparing)
	heldDrone := fixtureDrone(t, shopID, 80)
	require.NoError(t, heldDrone.Assign())
	require.NoError(t, heldOrder.StartDelivery(heldDrone.ID(), heldDrone.Battery()))

	orphanDrone := fixtureDrone(t, shopID, 64)
	require.NoError(t, orphanDrone.Assign())

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAllBusy", ctx).Return([]*drone.Drone{heldDrone, orphanDrone}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInStatus", ctx, order.Delivering).Return([]*order.Order{heldOrder}, nil).Once(),
		droneRepo.On("UpdateInStatus", ctx, orphanDrone, drone.Busy).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileFleetCommandHandler(factory, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Available, orphanDrone.Status())
	assert.Equal(t, 64, orphanDrone.Battery().Value())
	assert.Equal(t, drone.Busy, heldDrone.Status())
	droneRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestReconcileFleetCommandHandler_Handle_NothingToRepair(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileFleetCommand()

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAllBusy", ctx).Return([]*drone.Drone{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInStatus", ctx, order.Delivering).Return([]*order.Order{}, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileFleetCommandHandler(factory, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	droneRepo.AssertNotCalled(t, "UpdateInStatus")
}

func TestReconcileFleetCommandHandler_Handle_LogsOrderWithNonBusyDrone(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileFleetCommand()

	shopID := kernel.NewUUID()
	shopOwnerID := kernel.NewUUID()

	// the bound drone was overridden out of busy mid-delivery; the
	// order cannot be repaired automatically, only reported
	strandedOrder := fixtureOrder(t, kernel.NewUUID(), shopID, shopOwnerID, order.Preparing)
	groundedDrone := fixtureDrone(t, shopID, 70)
	require.NoError(t, groundedDrone.Assign())
	require.NoError(t, strandedOrder.StartDelivery(groundedDrone.ID(), groundedDrone.Battery()))
	require.NoError(t, groundedDrone.OverrideStatus(drone.Maintenance))

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAllBusy", ctx).Return([]*drone.Drone{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInStatus", ctx, order.Delivering).Return([]*order.Order{strandedOrder}, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))

	handler := commands.NewReconcileFleetCommandHandler(factory, logger)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Contains(t, logged.String(), "delivering order holds a drone that is not busy")
	assert.Contains(t, logged.String(), strandedOrder.ID().String())
	assert.Contains(t, logged.String(), groundedDrone.ID().String())
	droneRepo.AssertNotCalled(t, "UpdateInStatus")
}

func TestReconcileFleetCommandHandler_Handle_LostReleaseRaceContinues(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileFleetCommand()

	shopID := kernel.NewUUID()
	orphanA := fixtureDrone(t, shopID, 50)
	require.NoError(t, orphanA.Assign())
	orphanB := fixtureDrone(t, shopID, 60)
	require.NoError(t, orphanB.Assign())

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAllBusy", ctx).Return([]*drone.Drone{orphanA, orphanB}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInStatus", ctx, order.Delivering).Return([]*order.Order{}, nil).Once(),
		droneRepo.On("UpdateInStatus", ctx, orphanA, drone.Busy).
			Return(errs.NewConflictError("drone", orphanA.ID().String())).Once(),
		droneRepo.On("UpdateInStatus", ctx, orphanB, drone.Busy).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileFleetCommandHandler(factory, discardLogger())

	// one lost race does not abort the sweep
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, drone.Available, orphanB.Status())
}
