package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/product"
)

// ProductReader provides read access to persisted products.
type ProductReader interface {
	// ListRange retrieves a page of products ordered by id ascending.
	ListRange(ctx context.Context, offset, limit int) ([]*product.Product, error)
}

// ProductWriter provides mutation access to persisted products.
type ProductWriter interface {
	// Insert persists a new product and returns the generated identifier.
	Insert(ctx context.Context, aggregate *product.Product) (int, error)
}

// ProductRemover provides delete access to persisted products.
type ProductRemover interface {
	// DeleteByID removes the row. Returns errs.NotFoundError when no row
	// matches the identifier.
	DeleteByID(ctx context.Context, id int) error
}

// ProductRepository composes the product persistence capabilities.
type ProductRepository interface {
	ProductReader
	ProductWriter
	ProductRemover
}

// CatalogReader provides read access to the cake catalog.
type CatalogReader interface {
	// ListAll retrieves every catalog entry ordered by id ascending.
	ListAll(ctx context.Context) ([]*catalog.Cake, error)
}

// CatalogWriter provides mutation access to the cake catalog.
type CatalogWriter interface {
	// Insert persists a new catalog entry and returns the generated identifier.
	Insert(ctx context.Context, aggregate *catalog.Cake) (int, error)
}

// CatalogRepository composes the catalog persistence capabilities.
type CatalogRepository interface {
	CatalogReader
	CatalogWriter
}
