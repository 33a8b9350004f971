package main

import (
	"fmt"
	"log/slog"
	"os"

	"coffeeshop/cmd"
	httpin "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/postgres/baristarepo"
	"coffeeshop/internal/adapters/out/postgres/coffeeitemrepo"
	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/adapters/out/rabbit"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	publisher := createPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(app.CreateAssignBaristaCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:           goDotEnvVariable("AMQP_URL"),
		EventExchangeName: goDotEnvVariable("EVENT_EXCHANGE_NAME"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&coffeeitemrepo.CoffeeItemDTO{},
		&baristarepo.BaristaDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createPublisher connects to RabbitMQ when an AMQP URL is configured and
// falls back to logging events otherwise.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.AmqpURL == "" {
		return rabbit.NewLogPublisher(logger)
	}

	exchange := configs.EventExchangeName
	if exchange == "" {
		exchange = "coffeeshop.events"
	}

	publisher, err := rabbit.NewPublisher(configs.AmqpURL, exchange)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return publisher
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateCoffeeItemCommandHandler(),
		app.CreateUpdateCoffeeItemCommandHandler(),
		app.CreateSetCoffeeItemAvailabilityCommandHandler(),
		app.CreateCreateBaristaCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
