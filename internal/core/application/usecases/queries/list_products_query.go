package queries

import (
	"context"
	"errors"

	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves a page of products.
type ListProductsQuery struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewListProductsQuery validates the pagination parameters.
func NewListProductsQuery(offset, limit int) (ListProductsQuery, error) {
	var violations []errs.FieldViolation
	if offset < 0 {
		violations = append(violations, errs.FieldViolation{Field: "offset", Message: "must not be negative"})
	}
	if limit <= 0 {
		violations = append(violations, errs.FieldViolation{Field: "limit", Message: "must be greater than 0"})
	}
	if len(violations) > 0 {
		return ListProductsQuery{}, errs.NewValidationError(violations)
	}

	return ListProductsQuery{
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Offset returns the number of products to skip.
func (q ListProductsQuery) Offset() int { return q.offset }

// Limit returns the maximum number of products to return.
func (q ListProductsQuery) Limit() int { return q.limit }

// ListProductsQueryResponse is one row of the product list.
type ListProductsQueryResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ListProductsQueryHandler retrieves a page of products.
type ListProductsQueryHandler struct {
	reader ports.ProductReader
}

// NewListProductsQueryHandler creates a handler for the product list query.
func NewListProductsQueryHandler(reader ports.ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{reader: reader}
}

// Handle executes the query.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.reader.ListRange(ctx, query.Offset(), query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]ListProductsQueryResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ListProductsQueryResponse{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price().InexactFloat64(),
		})
	}

	return responses, nil
}
