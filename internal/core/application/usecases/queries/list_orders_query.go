package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves summaries of every order.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless query for all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one row of the order list. The delivery date is
// rendered in the legacy DD-MM-YYYY display format.
type ListOrdersQueryResponse struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	ProductID    int    `json:"id_product"`
	DeliveryDate string `json:"delivery_date"`
	Status       string `json:"status"`
}
