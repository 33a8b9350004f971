package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) createOrder(lineCount int) *order.Order {
	lines := make([]order.Line, 0, lineCount)
	for range lineCount {
		quantity, err := kernel.NewQuantity(1)
		suite.Require().NoError(err)
		unitPrice, err := kernel.MoneyFromFloat(2.50)
		suite.Require().NoError(err)
		line, err := order.NewLine(kernel.NewUUID(), quantity, unitPrice, "")
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), lines, "")
	suite.Require().NoError(err)
	return newOrder
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) addOrder(o *order.Order) {
	err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyActive() {
	pendingOrder := suite.createOrder(1)
	suite.addOrder(pendingOrder)

	inProgressOrder := suite.createOrder(1)
	err := inProgressOrder.AssignBarista(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.addOrder(inProgressOrder)

	completedOrder := suite.createOrder(1)
	err = completedOrder.AssignBarista(kernel.NewUUID())
	suite.Require().NoError(err)
	err = completedOrder.MarkAsReady()
	suite.Require().NoError(err)
	err = completedOrder.Complete()
	suite.Require().NoError(err)
	suite.addOrder(completedOrder)

	cancelledOrder := suite.createOrder(1)
	err = cancelledOrder.Cancel("customer left")
	suite.Require().NoError(err)
	suite.addOrder(cancelledOrder)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[pendingOrder.ID()])
	suite.True(resultIDs[inProgressOrder.ID()])
	suite.False(resultIDs[completedOrder.ID()])
	suite.False(resultIDs[cancelledOrder.ID()])
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	assignedOrder := suite.createOrder(3)
	baristaID := kernel.NewUUID()
	err := assignedOrder.AssignBarista(baristaID)
	suite.Require().NoError(err)
	suite.addOrder(assignedOrder)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.True(resp.ID.IsEqual(assignedOrder.ID()))
	suite.True(resp.CustomerID.IsEqual(assignedOrder.CustomerID()))
	suite.Require().NotNil(resp.BaristaID)
	suite.True(resp.BaristaID.IsEqual(baristaID))
	suite.Equal(order.InProgress, resp.Status)
	suite.True(resp.TotalPrice.IsEqual(assignedOrder.TotalPrice()))
	suite.Equal(3, resp.ItemCount)
	suite.WithinDuration(assignedOrder.OrderDate(), resp.OrderDate, time.Second)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_PendingOrder_HasNoBarista() {
	suite.addOrder(suite.createOrder(1))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].BaristaID)
	suite.Equal(order.Pending, result[0].Status)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedByDate() {
	first := suite.createOrder(1)
	second := suite.createOrder(1)
	suite.addOrder(first)
	suite.addOrder(second)

	// Backdate the second order so it must come first
	err := suite.db.Exec(
		"UPDATE orders SET order_date = order_date - interval '1 hour' WHERE id = ?",
		second.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[1].ID.IsEqual(first.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
