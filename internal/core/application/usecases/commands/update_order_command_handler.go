package commands

import (
	"context"

	"bakery/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial order updates. The fetch, the
// terminal-status check and the write happen inside one transaction with the
// row locked, so a concurrent writer cannot slip between check and act.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies the supplied fields to the order. Fails with NotFoundError
// when the order is absent and with BadRequestError when its status is
// delivered or cancelled.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	current, err := repo.GetByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if current.IsLocked() {
		return errs.NewBadRequestError("A delivered or cancelled order cannot be modified.")
	}

	if err = repo.ApplyPartial(ctx, cmd.OrderID(), cmd.Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
