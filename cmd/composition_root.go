package cmd

import (
	"time"

	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/catalogrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCakeCommandHandler() commands.CreateCakeCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCakeCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListCatalogQueryHandler() queries.ListCatalogQueryHandler {
	return queries.NewListCatalogQueryHandler(catalogrepo.NewGormCatalogRepository(c.gormDB))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
