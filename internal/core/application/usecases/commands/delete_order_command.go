package commands

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a validated request to remove an order.
type DeleteOrderCommand struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the identifier path parameter.
func NewDeleteOrderCommand(orderID int) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValidationError([]errs.FieldViolation{
			{Field: "order_id", Message: "must be greater than 0"},
		})
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() int {
	return c.orderID
}
