package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// displayDateLayout is the legacy day-month-year rendering used by the order
// list. Single-order reads use isoDateLayout instead.
const (
	displayDateLayout = "02-01-2006"
	isoDateLayout     = "2006-01-02"
)

// ListOrdersQueryHandler retrieves all orders, id ascending.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

// NewListOrdersQueryHandler creates a handler for the order list query.
func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle executes the query and renders each summary for the wire.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries, err := h.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ListOrdersQueryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, ListOrdersQueryResponse{
			ID:           s.ID,
			CustomerName: s.CustomerName,
			ProductID:    s.ProductID,
			DeliveryDate: s.DeliveryDate.Format(displayDateLayout),
			Status:       s.Status.String(),
		})
	}

	return responses, nil
}
