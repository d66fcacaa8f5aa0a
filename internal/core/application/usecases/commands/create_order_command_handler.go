package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order creation. Enforces the business
// rule that the delivery date may not precede the creation date, then
// delegates persistence to the gateway inside a transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The clock is injected so the delivery-date rule is testable.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the creation command and returns the generated order
// identifier. An order with a delivery date earlier than today is rejected
// with a BadRequestError and nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.DeliveryDate().Before(h.today()) {
		return 0, errs.NewBadRequestError("Delivery date cannot be earlier than order date.")
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.ProductID(),
		cmd.DeliveryDate(),
	)
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

	id, err := uow.OrderRepository().Insert(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

// today truncates the injected clock to a UTC calendar date so the
// comparison against the parsed delivery date is date-only.
func (h CreateOrderCommandHandler) today() time.Time {
	y, m, d := h.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
