package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using PostgreSQL containers to verify persistence
// behavior against a real database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestInsert_RoundTrip() {
	ctx := context.Background()

	aggregate := suite.createTestOrder("Ana Torres")
	id, err := suite.repository.Insert(ctx, aggregate)
	suite.Require().NoError(err)
	suite.Positive(id)

	retrieved, err := suite.repository.GetByID(ctx, id)
	suite.Require().NoError(err)

	suite.Equal("Ana Torres", retrieved.CustomerName())
	suite.Equal("555123456", retrieved.CustomerPhone())
	suite.Equal("ana@example.com", retrieved.CustomerEmail())
	suite.Equal(3, retrieved.ProductID())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.True(retrieved.TotalAmount().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByID_NonExistentOrder() {
	_, err := suite.repository.GetByID(context.Background(), 999999)
	suite.Require().Error(err)

	var notFoundErr *errs.NotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.ErrorIs(err, errs.ErrNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyPartial_LeavesOtherColumnsUntouched() {
	ctx := context.Background()

	id, err := suite.repository.Insert(ctx, suite.createTestOrder("Ana Torres"))
	suite.Require().NoError(err)

	err = suite.repository.ApplyPartial(ctx, id, map[string]any{
		"customer_name": "Luis Pérez",
		"status":        "received",
	})
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByID(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Luis Pérez", retrieved.CustomerName())
	suite.Equal(order.StatusReceived, retrieved.Status())
	suite.Equal("555123456", retrieved.CustomerPhone())
	suite.Equal("ana@example.com", retrieved.CustomerEmail())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyPartial_NonExistentOrder() {
	err := suite.repository.ApplyPartial(context.Background(), 999999, map[string]any{
		"customer_name": "Luis Pérez",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteByID() {
	ctx := context.Background()

	id, err := suite.repository.Insert(ctx, suite.createTestOrder("Ana Torres"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, id))

	_, err = suite.repository.GetByID(ctx, id)
	suite.ErrorIs(err, errs.ErrNotFound)

	suite.ErrorIs(suite.repository.DeleteByID(ctx, id), errs.ErrNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAll_OrderedByIdentifier() {
	ctx := context.Background()

	for _, name := range []string{"Ana Torres", "Luis Pérez", "Marta Díaz"} {
		_, err := suite.repository.Insert(ctx, suite.createTestOrder(name))
		suite.Require().NoError(err)
	}

	summaries, err := suite.repository.ListAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(summaries, 3)
	suite.Equal("Ana Torres", summaries[0].CustomerName)
	suite.Equal("Luis Pérez", summaries[1].CustomerName)
	suite.Equal("Marta Díaz", summaries[2].CustomerName)
	suite.Less(summaries[0].ID, summaries[1].ID)
	suite.Equal(order.StatusPending, summaries[0].Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAll_EmptyTable() {
	summaries, err := suite.repository.ListAll(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIDForUpdate_InsideTransaction() {
	ctx := context.Background()

	id, err := suite.repository.Insert(ctx, suite.createTestOrder("Ana Torres"))
	suite.Require().NoError(err)

	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx)
	locked, err := txRepo.GetByIDForUpdate(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, locked.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestInsert_PersistsDecimalAmount() {
	ctx := context.Background()

	aggregate, err := order.RestoreOrder(
		0,
		"Ana Torres", "555123456", "ana@example.com",
		3,
		time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
		order.StatusReady,
		decimal.RequireFromString("45.50"),
	)
	suite.Require().NoError(err)

	id, err := suite.repository.Insert(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByID(ctx, id)
	suite.Require().NoError(err)
	suite.True(retrieved.TotalAmount().Equal(decimal.RequireFromString("45.50")))
	suite.Equal(order.StatusReady, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerName string) *order.Order {
	aggregate, err := order.NewOrder(
		customerName,
		"555123456",
		"ana@example.com",
		3,
		time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
