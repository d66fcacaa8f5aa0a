package commands_test

import (
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCakeCommand_CollectsEveryViolation(t *testing.T) {
	_, err := commands.NewCreateCakeCommand(map[string]any{
		"name":  "  ",
		"price": -5.0,
	})
	require.Error(t, err)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 3)
}

func TestCreateCakeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCakeCommand(map[string]any{
		"name":        "Red Velvet",
		"description": "Cream cheese frosting",
		"price":       38.00,
	})
	require.NoError(t, err)

	repo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*catalog.Cake")).Return(5, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCakeCommandHandler(factory, func() time.Time {
		return time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	})
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
