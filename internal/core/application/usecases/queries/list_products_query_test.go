package queries_test

import (
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListProductsQuery_Violations(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		limit   int
		fields  []string
	}{
		{"negative offset", -1, 10, []string{"offset"}},
		{"zero limit", 0, 0, []string{"limit"}},
		{"both invalid", -1, -1, []string{"offset", "limit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewListProductsQuery(tt.offset, tt.limit)
			require.Error(t, err)

			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Violations, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, validationErr.Violations[i].Field)
			}
		})
	}
}

func TestListProductsQueryHandler_Handle_PassesPagination(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

	reader := new(MockProductReader)
	reader.On("ListRange", ctx, 20, 10).Return([]*product.Product{
		product.RestoreProduct(21, "Chocolate Cake", "Three layers", decimal.NewFromFloat(45.50), createdAt, nil),
	}, nil).Once()

	query, err := queries.NewListProductsQuery(20, 10)
	require.NoError(t, err)

	h := queries.NewListProductsQueryHandler(reader)
	result, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, queries.ListProductsQueryResponse{
		ID:          21,
		Name:        "Chocolate Cake",
		Description: "Three layers",
		Price:       45.50,
	}, result[0])
	reader.AssertExpectations(t)
}
