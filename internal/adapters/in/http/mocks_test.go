package http_test

import (
	"context"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/order"
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

// stubOrderUoW trades mock bookkeeping for brevity: transaction calls always
// succeed and the repository is fixed.
type stubOrderUoW struct {
	repo ports.OrderRepository
}

func (s stubOrderUoW) Begin(context.Context) error            { return nil }
func (s stubOrderUoW) Commit(context.Context) error           { return nil }
func (s stubOrderUoW) Rollback(context.Context) error         { return nil }
func (s stubOrderUoW) OrderRepository() ports.OrderRepository { return s.repo }

type stubOrderUoWFactory struct {
	repo ports.OrderRepository
}

func (s stubOrderUoWFactory) Create() commands.OrderUoW {
	return stubOrderUoW{repo: s.repo}
}
