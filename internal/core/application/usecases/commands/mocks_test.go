package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) UpdateInStatus(ctx context.Context, d *drone.Drone, expected drone.Status) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetBySerial(ctx context.Context, serialNumber string) (*drone.Drone, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetAllBusy(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetItems(ctx context.Context, ids []kernel.UUID) ([]ports.CatalogItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CatalogItem), args.Error(1)
}

func (m *MockCatalogReader) GetShop(ctx context.Context, id kernel.UUID) (ports.CatalogShop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.CatalogShop), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) CatalogReader() ports.CatalogReader {
	args := m.Called()
	return args.Get(0).(ports.CatalogReader)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func percentOf(t *testing.T, value int) kernel.Percent {
	t.Helper()

	p, err := kernel.NewPercent(value)
	require.NoError(t, err)
	return p
}

func fixtureAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()

	coordinates, err := kernel.NewGeoPoint(10.762622, 106.660172)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 Nguyen Hue", "Ho Chi Minh City", coordinates, "gate code 4411")
	require.NoError(t, err)
	return address
}

func fixtureContact(t *testing.T) order.ContactInfo {
	t.Helper()

	contact, err := order.NewContactInfo("Linh Tran", "+84901234567", "linh@example.com")
	require.NoError(t, err)
	return contact
}

// fixtureOrder builds an order owned by userID at a shop managed by
// shopOwnerID and walks it to the requested status.
func fixtureOrder(
	t *testing.T,
	userID kernel.UUID,
	shopID kernel.UUID,
	shopOwnerID kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()

	item, err := order.NewLineItemSnapshot(kernel.NewUUID(), "Pho Bo", "pho.jpg",
		"noodles", 9.5, 2, shopID, shopOwnerID)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), userID, []order.LineItemSnapshot{item},
		fixtureAddress(t), fixtureContact(t), order.PaymentMethodCash, time.Now().UTC())
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

func fixtureDrone(t *testing.T, shopID kernel.UUID, battery int) *drone.Drone {
	t.Helper()

	d, err := drone.NewDrone(kernel.NewUUID(), shopID, "DJI FlyCart 30", "SN-001-XYZ", 5.5,
		drone.Specifications{MaxSpeedKmh: 60, MaxAltitudeM: 120, MaxRangeKm: 15},
		percentOf(t, battery), time.Now().UTC())
	require.NoError(t, err)
	return d
}
