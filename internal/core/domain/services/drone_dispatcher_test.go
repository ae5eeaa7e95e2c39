package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

func testOrder(t *testing.T, shopID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	coordinates, err := kernel.NewGeoPoint(10.762622, 106.660172)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 Nguyen Hue", "Ho Chi Minh City", coordinates, "")
	require.NoError(t, err)
	contact, err := order.NewContactInfo("Linh Tran", "+84901234567", "linh@example.com")
	require.NoError(t, err)
	item, err := order.NewLineItemSnapshot(kernel.NewUUID(), "Pho Bo", "pho.jpg", "noodles",
		9.5, 2, shopID, kernel.NewUUID())
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItemSnapshot{item}, address, contact, order.PaymentMethodCash, time.Now().UTC())
	require.NoError(t, err)

	if status == order.Pending {
		return ord
	}
	require.NoError(t, ord.ConfirmPayment())
	if status == order.Confirmed {
		return ord
	}
	require.NoError(t, ord.StartPreparing())
	require.Equal(t, status, ord.Status())
	return ord
}

func testDrone(t *testing.T, shopID kernel.UUID, battery int) *drone.Drone {
	t.Helper()

	level, err := kernel.NewPercent(battery)
	require.NoError(t, err)

	d, err := drone.NewDrone(kernel.NewUUID(), shopID, "DJI FlyCart 30", "SN-001-XYZ",
		5.5, drone.Specifications{MaxSpeedKmh: 60, MaxAltitudeM: 120, MaxRangeKm: 15},
		level, time.Now().UTC())
	require.NoError(t, err)

	return d
}

func TestDroneDispatcherDispatch(t *testing.T) {
	shopID := kernel.NewUUID()
	ord := testOrder(t, shopID, order.Preparing)
	drn := testDrone(t, shopID, 80)

	dispatcher := NewDroneDispatcher()
	require.NoError(t, dispatcher.Dispatch(ord, drn))

	assert.Equal(t, order.Delivering, ord.Status())
	require.NotNil(t, ord.Drone())
	assert.True(t, ord.Drone().IsEqual(drn.ID()))
	assert.Equal(t, 80, ord.DroneBattery().Value())

	assert.Equal(t, drone.Busy, drn.Status())
	assert.Equal(t, 1, drn.TotalFlights())
}

func TestDroneDispatcherRequiresPreparingOrder(t *testing.T) {
	shopID := kernel.NewUUID()

	for _, status := range []order.Status{order.Pending, order.Confirmed} {
		t.Run(status.String(), func(t *testing.T) {
			ord := testOrder(t, shopID, status)
			drn := testDrone(t, shopID, 80)

			err := NewDroneDispatcher().Dispatch(ord, drn)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)

			// the drone is untouched by a refused dispatch
			assert.Equal(t, drone.Available, drn.Status())
			assert.Equal(t, 0, drn.TotalFlights())
		})
	}
}

func TestDroneDispatcherShopMismatch(t *testing.T) {
	ord := testOrder(t, kernel.NewUUID(), order.Preparing)
	drn := testDrone(t, kernel.NewUUID(), 80)

	err := NewDroneDispatcher().Dispatch(ord, drn)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, ErrDroneShopMismatch)
	assert.Equal(t, order.Preparing, ord.Status())
}

func TestDroneDispatcherBatteryFloor(t *testing.T) {
	shopID := kernel.NewUUID()
	ord := testOrder(t, shopID, order.Preparing)
	drn := testDrone(t, shopID, drone.MinDispatchBattery-1)

	err := NewDroneDispatcher().Dispatch(ord, drn)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, ErrDroneBatteryTooLow)
	assert.Equal(t, drone.Available, drn.Status())
}

func TestDroneDispatcherDroneNotAvailable(t *testing.T) {
	shopID := kernel.NewUUID()
	ord := testOrder(t, shopID, order.Preparing)
	drn := testDrone(t, shopID, 80)
	require.NoError(t, drn.Assign())

	err := NewDroneDispatcher().Dispatch(ord, drn)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, drone.ErrDroneNotAvailable)
	assert.Equal(t, order.Preparing, ord.Status())
}
