package orderrepo_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestProduct(name string, priceCents int64) *product.Product {
	price, err := kernel.NewMoney(priceCents)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, "", price, 100)
	suite.Require().NoError(err)
	return p
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	total, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Calle Mayor 1", total)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_OrderWithItems_PersistsBoth() {
	ctx := context.Background()

	o := suite.createTestOrder()
	laptop := suite.createTestProduct("Laptop", 120000)
	_, err := o.AddItem(laptop, 2)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
	suite.Equal(o.CustomerID(), loaded.CustomerID())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal("Calle Mayor 1", loaded.ShippingAddress())
	suite.Equal(int64(5000), loaded.TotalAmount().Cents())

	suite.Require().Len(loaded.Items(), 1)
	item := loaded.Items()[0]
	suite.Equal(laptop.ID(), item.ProductID())
	suite.Equal(2, item.Quantity())
	suite.Equal(int64(120000), item.PriceAtPurchase().Cents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_OrderWithoutItems_Success() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.Items())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(order.InTransit))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_InsertsItemsAddedAfterAdd() {
	ctx := context.Background()

	// The create-with-items flow adds the bare order row first and persists
	// the accumulated items through Update.
	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	laptop := suite.createTestProduct("Laptop", 120000)
	mouse := suite.createTestProduct("Mouse", 2500)
	_, err := o.AddItem(laptop, 1)
	suite.Require().NoError(err)
	_, err = o.AddItem(mouse, 3)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotDuplicateExistingItems() {
	ctx := context.Background()

	o := suite.createTestOrder()
	laptop := suite.createTestProduct("Laptop", 120000)
	_, err := o.AddItem(laptop, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	// A later update of the same aggregate must leave the items untouched.
	suite.Require().NoError(o.ChangeStatus(order.InTransit))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_LoadsItemsInStableOrder() {
	ctx := context.Background()

	o := suite.createTestOrder()
	for _, name := range []string{"Laptop", "Mouse", "Teclado"} {
		_, err := o.AddItem(suite.createTestProduct(name, 2500), 1)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.repository.Add(ctx, o))

	itemIDs := func(loaded *order.Order) []string {
		ids := make([]string, 0, len(loaded.Items()))
		for _, item := range loaded.Items() {
			ids = append(ids, item.ID().String())
		}
		return ids
	}

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	// Items load sorted by id, so repeated reads agree on the sequence.
	suite.Require().Len(first.Items(), 3)
	suite.True(sort.StringsAreSorted(itemIDs(first)))
	suite.Equal(itemIDs(first), itemIDs(second))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksConcurrentLocker() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	repo1 := orderrepo.NewGormOrderRepository(tx1, suite.tracker)

	locked, err := repo1.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, locked.Status())

	// A second locked read of the same order must block until the first
	// transaction finishes, then see the committed status.
	observed := make(chan order.Status, 1)
	go func() {
		tx2 := suite.db.Begin()
		defer tx2.Rollback()
		repo2 := orderrepo.NewGormOrderRepository(tx2, suite.tracker)

		reread, lockErr := repo2.GetForUpdate(ctx, o.ID())
		if lockErr != nil {
			observed <- order.Unknown
			return
		}
		observed <- reread.Status()
	}()

	select {
	case <-observed:
		suite.Fail("second locker acquired the order row before commit")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked.ChangeStatus(order.InTransit))
	suite.Require().NoError(repo1.Update(ctx, locked))
	suite.Require().NoError(tx1.Commit().Error)

	select {
	case status := <-observed:
		suite.Equal(order.InTransit, status)
	case <-time.After(5 * time.Second):
		suite.Fail("second locker never acquired the order row")
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
