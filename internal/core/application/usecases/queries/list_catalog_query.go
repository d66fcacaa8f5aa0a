package queries

import (
	"context"
	"errors"

	"bakery/internal/core/ports"
	"bakery/internal/pkg/guard"
)

var (
	ErrListCatalogQueryIsNotConstructed = errors.New(
		"ListCatalogQuery must be created via NewListCatalogQuery constructor",
	)
)

// ListCatalogQuery retrieves the whole cake catalog.
type ListCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewListCatalogQuery creates a parameterless query for the catalog.
func NewListCatalogQuery() ListCatalogQuery {
	return ListCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

// ListCatalogQueryResponse is one catalog entry.
type ListCatalogQueryResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListCatalogQueryHandler retrieves the cake catalog.
type ListCatalogQueryHandler struct {
	reader ports.CatalogReader
}

// NewListCatalogQueryHandler creates a handler for the catalog list query.
func NewListCatalogQueryHandler(reader ports.CatalogReader) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{reader: reader}
}

// Handle executes the query.
func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]ListCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cakes, err := h.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ListCatalogQueryResponse, 0, len(cakes))
	for _, c := range cakes {
		responses = append(responses, ListCatalogQueryResponse{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Price:       c.Price().InexactFloat64(),
			CreatedAt:   c.CreatedAt().Format(isoDateLayout),
			UpdatedAt:   c.UpdatedAt().Format(isoDateLayout),
		})
	}

	return responses, nil
}
