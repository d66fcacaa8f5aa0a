package commands_test

import (
	"context"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]order.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Summary), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDForUpdate(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Insert(ctx context.Context, aggregate *order.Order) (int, error) {
	args := m.Called(ctx, aggregate)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) ApplyPartial(ctx context.Context, id int, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) ListRange(ctx context.Context, offset, limit int) ([]*product.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, aggregate *product.Product) (int, error) {
	args := m.Called(ctx, aggregate)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) ListAll(ctx context.Context) ([]*catalog.Cake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Cake), args.Error(1)
}

func (m *MockCatalogRepository) Insert(ctx context.Context, aggregate *catalog.Cake) (int, error) {
	args := m.Called(ctx, aggregate)
	return args.Int(0), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface the command handlers
// consume.
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

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}
