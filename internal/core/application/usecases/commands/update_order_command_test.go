package commands_test

import (
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_CarriesOnlySuppliedFields(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(7, map[string]any{
		"customer_name": "  Luis Pérez ",
		"delivery_date": "2027-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, cmd.OrderID())
	assert.Equal(t, map[string]any{
		"customer_name": "Luis Pérez",
		"delivery_date": time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
	}, cmd.Fields())
}

func TestNewUpdateOrderCommand_EmptyPayloadIsValid(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(7, map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, cmd.Fields())
}

func TestNewUpdateOrderCommand_NullFieldIsViolation(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(7, map[string]any{
		"customer_phone": nil,
	})
	require.Error(t, err)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "customer_phone", validationErr.Violations[0].Field)
	assert.Equal(t, "must not be null", validationErr.Violations[0].Message)
}

func TestNewUpdateOrderCommand_InvalidIdentifier(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(0, map[string]any{})
	require.Error(t, err)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "order_id", validationErr.Violations[0].Field)
}

func TestNewUpdateOrderCommand_ConstraintViolations(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(7, map[string]any{
		"customer_phone": "123",
		"id_product":     float64(-1),
	})
	require.Error(t, err)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
}
