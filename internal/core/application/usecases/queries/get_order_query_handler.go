package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// GetOrderQueryHandler retrieves one full order.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle executes the query. Fails with NotFoundError when the identifier
// matches no order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.reader.GetByID(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:            aggregate.ID(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		CustomerEmail: aggregate.CustomerEmail(),
		ProductID:     aggregate.ProductID(),
		DeliveryDate:  aggregate.DeliveryDate().Format(isoDateLayout),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount().InexactFloat64(),
	}, nil
}
