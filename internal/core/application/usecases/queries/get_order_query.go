package queries

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one full order by identifier.
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates the identifier path parameter.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValidationError([]errs.FieldViolation{
			{Field: "order_id", Message: "must be greater than 0"},
		})
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryResponse is the full order as returned to the caller. The
// delivery date is rendered in ISO YYYY-MM-DD format.
type GetOrderQueryResponse struct {
	ID            int     `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	ProductID     int     `json:"id_product"`
	DeliveryDate  string  `json:"delivery_date"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
}
