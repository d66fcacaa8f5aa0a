package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_InvalidIdentifier(t *testing.T) {
	for _, id := range []int{0, -1} {
		_, err := commands.NewDeleteOrderCommand(id)
		require.Error(t, err)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, "order_id", validationErr.Violations[0].Field)
	}
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(7)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDForUpdate", mock.Anything, 7).Return(restoredOrder(t, order.StatusDelivered), nil).Once(),
		repo.On("DeleteByID", mock.Anything, 7).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(999999)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDForUpdate", mock.Anything, 999999).
			Return(nil, errs.NewNotFoundError("Order", 999999)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
