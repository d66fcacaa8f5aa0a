// Package postgres provides the GORM-based persistence gateway for the
// bakery services: a Unit of Work over database transactions and one
// repository per table. Every business mutation runs its fetch, check and
// write inside a single unit of work so the row cannot change between the
// check and the act.
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/catalogrepo"
	"bakery/internal/adapters/out/postgres/faults"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances from a pooled GORM
// connection. Each business operation gets a fresh instance so concurrent
// requests never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// from it execute inside the transaction while one is active and on the
// pooled connection otherwise.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return faults.Classify(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return faults.Classify(err)
}

// Rollback discards all changes made within the transaction, leaving every
// row as it was before Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return faults.Classify(err)
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the pooled connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle())
}

// ProductRepository returns a product repository bound the same way.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.handle())
}

// CatalogRepository returns a catalog repository bound the same way.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
