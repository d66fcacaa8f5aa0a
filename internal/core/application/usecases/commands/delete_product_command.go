package commands

import (
	"context"
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a validated request to remove a product.
type DeleteProductCommand struct {
	productID int

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand validates the identifier path parameter.
func NewDeleteProductCommand(productID int) (DeleteProductCommand, error) {
	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValidationError([]errs.FieldViolation{
			{Field: "product_id", Message: "must be greater than 0"},
		})
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c DeleteProductCommand) ProductID() int {
	return c.productID
}

// DeleteProductCommandHandler handles product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

// Handle removes the product. Fails with NotFoundError when it is absent.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().DeleteByID(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
