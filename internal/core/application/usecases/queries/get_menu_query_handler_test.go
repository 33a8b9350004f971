package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/coffeeitemrepo"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
	itemRepo  *coffeeitemrepo.GormCoffeeItemRepository
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&coffeeitemrepo.CoffeeItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMenuQueryHandler(db)
	suite.itemRepo = coffeeitemrepo.NewGormCoffeeItemRepository(db, &mockAggregateTracker{})
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE coffee_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) createItem(name string, priceValue float64) *coffeeitem.CoffeeItem {
	price, err := kernel.MoneyFromFloat(priceValue)
	suite.Require().NoError(err)

	item, err := coffeeitem.NewCoffeeItem(kernel.NewUUID(), name, "house blend", price, kernel.NewUUID(), "")
	suite.Require().NoError(err)

	err = suite.itemRepo.Add(context.Background(), item)
	suite.Require().NoError(err)
	return item
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ReturnsItemsSortedByName() {
	suite.createItem("Latte", 3.80)
	suite.createItem("Americano", 2.80)
	suite.createItem("Espresso", 2.50)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Americano", result[0].Name)
	suite.Equal("Espresso", result[1].Name)
	suite.Equal("Latte", result[2].Name)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ExcludesUnavailableItems() {
	suite.createItem("Espresso", 2.50)

	unavailable := suite.createItem("Flat White", 3.50)
	unavailable.SetAvailability(false)
	err := suite.itemRepo.Update(context.Background(), unavailable)
	suite.Require().NoError(err)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Espresso", result[0].Name)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	price, err := kernel.MoneyFromFloat(4.20)
	suite.Require().NoError(err)
	item, err := coffeeitem.NewCoffeeItem(
		kernel.NewUUID(), "Mocha", "Chocolate and espresso", price, kernel.NewUUID(), "https://img/mocha.png")
	suite.Require().NoError(err)
	err = suite.itemRepo.Add(context.Background(), item)
	suite.Require().NoError(err)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(item.ID()))
	suite.Equal("Mocha", result[0].Name)
	suite.Equal("Chocolate and espresso", result[0].Description)
	suite.True(result[0].Price.IsEqual(price))
	suite.Equal("https://img/mocha.png", result[0].ImageURL)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMenuQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetMenuQuery constructor")
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.createItem("Espresso", 2.50)

	query := queries.NewGetMenuQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ kernel.AggregateRoot) {
}
