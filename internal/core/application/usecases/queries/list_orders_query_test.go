package queries_test

import (
	"errors"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_RendersDayMonthYear(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("ListAll", ctx).Return([]order.Summary{
		{
			ID:           1,
			CustomerName: "Ana Torres",
			ProductID:    3,
			DeliveryDate: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
			Status:       order.StatusPending,
		},
		{
			ID:           2,
			CustomerName: "Luis Pérez",
			ProductID:    1,
			DeliveryDate: time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:       order.StatusDelivered,
		},
	}, nil).Once()

	h := queries.NewListOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, queries.ListOrdersQueryResponse{
		ID:           1,
		CustomerName: "Ana Torres",
		ProductID:    3,
		DeliveryDate: "24-12-2026",
		Status:       "pending",
	}, result[0])
	assert.Equal(t, "02-01-2027", result[1].DeliveryDate)
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_EmptyListIsNotAnError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("ListAll", ctx).Return([]order.Summary{}, nil).Once()

	h := queries.NewListOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestListOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("ListAll", ctx).
		Return(nil, errs.NewConnectivityError(errors.New("dial error"))).Once()

	h := queries.NewListOrdersQueryHandler(reader)
	_, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConnectivity)
}

func TestListOrdersQueryHandler_Handle_NotConstructed(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)

	h := queries.NewListOrdersQueryHandler(reader)
	_, err := h.Handle(ctx, queries.ListOrdersQuery{})
	require.Error(t, err)
	reader.AssertNotCalled(t, "ListAll", ctx)
}
