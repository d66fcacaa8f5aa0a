package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces consumed by command handlers. Handlers depend on
// the narrowest contract they need; the concrete postgres unit of work
// satisfies all of them.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a
	// transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderUoW manages transactions for order mutations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances, one per
	// business operation.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for product mutations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CatalogUoW manages transactions for catalog mutations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
