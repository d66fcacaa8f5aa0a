package commands

import "context"

// DeleteOrderCommandHandler handles order removal with fetch-check-then-
// delete semantics, all inside one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle removes the order. Fails with NotFoundError when it is absent.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	repo := uow.OrderRepository()

	if _, err := repo.GetByIDForUpdate(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := repo.DeleteByID(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
