package queries_test

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) ListAll(ctx context.Context) ([]order.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Summary), args.Error(1)
}

func (m *MockOrderReader) GetByID(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductReader struct{ mock.Mock }

func (m *MockProductReader) ListRange(ctx context.Context, offset, limit int) ([]*product.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) ListAll(ctx context.Context) ([]*catalog.Cake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Cake), args.Error(1)
}
