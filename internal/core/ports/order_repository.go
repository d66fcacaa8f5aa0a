package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderReader provides read access to persisted orders.
type OrderReader interface {
	// ListAll retrieves summaries of every order, ordered by id ascending.
	ListAll(ctx context.Context) ([]order.Summary, error)

	// GetByID retrieves the full order. Returns errs.NotFoundError when no
	// row matches the identifier.
	GetByID(ctx context.Context, id int) (*order.Order, error)
}

// OrderWriter provides mutation access to persisted orders.
type OrderWriter interface {
	// GetByIDForUpdate retrieves the full order holding a row-level lock for
	// the remainder of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id int) (*order.Order, error)

	// Insert persists a new order and returns the generated identifier.
	Insert(ctx context.Context, aggregate *order.Order) (int, error)

	// ApplyPartial assigns only the supplied columns onto the existing row.
	// Returns errs.NotFoundError when no row matches the identifier.
	ApplyPartial(ctx context.Context, id int, fields map[string]any) error
}

// OrderRemover provides delete access to persisted orders.
type OrderRemover interface {
	// DeleteByID removes the row. Returns errs.NotFoundError when no row
	// matches the identifier.
	DeleteByID(ctx context.Context, id int) error
}

// OrderRepository composes the order persistence capabilities implemented by
// the concrete gateway.
type OrderRepository interface {
	OrderReader
	OrderWriter
	OrderRemover
}
