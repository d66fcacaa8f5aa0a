package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, now func() time.Time) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle persists the product and returns the generated identifier.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.ProductRepository().Insert(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
