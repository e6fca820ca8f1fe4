package commands_test

import (
	"context"
	"testing"

	"remont/internal/core/application/usecases/commands"
	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/model/staff"
	"remont/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForActor(ctx context.Context, id kernel.UUID, caller actor.Actor) (*order.Order, error) {
	args := m.Called(ctx, id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotificationOutbox struct{ mock.Mock }

func (m *MockNotificationOutbox) Enqueue(ctx context.Context, envelopes []ports.NotificationEnvelope) error {
	args := m.Called(ctx, envelopes)
	return args.Error(0)
}

func (m *MockNotificationOutbox) GetPending(ctx context.Context, limit int) ([]ports.NotificationEnvelope, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.NotificationEnvelope), args.Error(1)
}

func (m *MockNotificationOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) NotificationOutbox() ports.NotificationOutbox {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutbox)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCategoryDirectory struct{ mock.Mock }

func (m *MockCategoryDirectory) FindActive(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

type MockAddressDirectory struct{ mock.Mock }

func (m *MockAddressDirectory) Find(ctx context.Context, id kernel.UUID) (*catalog.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Address), args.Error(1)
}

type MockBranchDirectory struct{ mock.Mock }

func (m *MockBranchDirectory) GetAll(ctx context.Context) ([]*catalog.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Branch), args.Error(1)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) FindActive(ctx context.Context, id kernel.UUID) (*staff.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Technician), args.Error(1)
}

type MockCourierDirectory struct{ mock.Mock }

func (m *MockCourierDirectory) FindActive(ctx context.Context, id kernel.UUID) (*staff.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Courier), args.Error(1)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) Send(ctx context.Context, envelope ports.NotificationEnvelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

func mustActor(t *testing.T, role actor.Role, id kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(role, id)
	require.NoError(t, err)
	return a
}

func restoredOrder(t *testing.T, customerID kernel.UUID, serviceType order.ServiceType,
	status order.Status, technicianID, courierID *kernel.UUID) *order.Order {
	t.Helper()

	customer, err := order.NewIndividualCustomer(customerID)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), customer, serviceType, status,
		"Samsung", "WW80", "does not spin", kernel.NewUUID(), kernel.NewUUID(),
		technicianID, courierID, "", nil, 1)
	require.NoError(t, err)

	return o
}
