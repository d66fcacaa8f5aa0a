package ports

import "context"

// UnitOfWork coordinates a storage transaction across repository operations.
// Each business mutation runs its check-then-act sequence inside exactly one
// unit of work so concurrent writers cannot interleave between the check and
// the write.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin on an already started unit
	// of work is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction
	// when one is active, or to the pooled connection otherwise.
	OrderRepository() OrderRepository

	// ProductRepository returns a product repository bound the same way.
	ProductRepository() ProductRepository

	// CatalogRepository returns a catalog repository bound the same way.
	CatalogRepository() CatalogRepository
}
