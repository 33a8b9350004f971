package commands_test

import (
	"context"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/barista"
	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
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

type MockCoffeeItemRepository struct{ mock.Mock }

func (m *MockCoffeeItemRepository) Add(ctx context.Context, item *coffeeitem.CoffeeItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCoffeeItemRepository) Update(ctx context.Context, item *coffeeitem.CoffeeItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCoffeeItemRepository) Get(ctx context.Context, id kernel.UUID) (*coffeeitem.CoffeeItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coffeeitem.CoffeeItem), args.Error(1)
}

func (m *MockCoffeeItemRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*coffeeitem.CoffeeItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coffeeitem.CoffeeItem), args.Error(1)
}

func (m *MockCoffeeItemRepository) GetAllAvailable(ctx context.Context) ([]*coffeeitem.CoffeeItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coffeeitem.CoffeeItem), args.Error(1)
}

type MockBaristaRepository struct{ mock.Mock }

func (m *MockBaristaRepository) Add(ctx context.Context, b *barista.Barista) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBaristaRepository) Get(ctx context.Context, id kernel.UUID) (*barista.Barista, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*barista.Barista), args.Error(1)
}

func (m *MockBaristaRepository) GetAllFree(ctx context.Context) ([]*barista.Barista, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*barista.Barista), args.Error(1)
}

// mockTx provides the shared transaction surface for unit of work mocks.
// TrackedAggregates returns nil unless an expectation is registered, which
// keeps handlers with a nil publisher free of extra setup.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) TrackedAggregates() []kernel.AggregateRoot {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.AggregateRoot)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCoffeeItemUoW struct{ mockTx }

func (m *MockCoffeeItemUoW) CoffeeItemRepository() ports.CoffeeItemRepository {
	args := m.Called()
	return args.Get(0).(ports.CoffeeItemRepository)
}

type MockCoffeeItemUoWFactory struct{ mock.Mock }

func (m *MockCoffeeItemUoWFactory) Create() commands.CoffeeItemUoW {
	args := m.Called()
	return args.Get(0).(commands.CoffeeItemUoW)
}

type MockBaristaUoW struct{ mockTx }

func (m *MockBaristaUoW) BaristaRepository() ports.BaristaRepository {
	args := m.Called()
	return args.Get(0).(ports.BaristaRepository)
}

type MockBaristaUoWFactory struct{ mock.Mock }

func (m *MockBaristaUoWFactory) Create() commands.BaristaUoW {
	args := m.Called()
	return args.Get(0).(commands.BaristaUoW)
}

type MockUoW struct{ mockTx }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CoffeeItemRepository() ports.CoffeeItemRepository {
	args := m.Called()
	return args.Get(0).(ports.CoffeeItemRepository)
}

func (m *MockUoW) BaristaRepository() ports.BaristaRepository {
	args := m.Called()
	return args.Get(0).(ports.BaristaRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
