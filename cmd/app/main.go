package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dronedelivery/cmd"
	httpadapter "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/postgres/catalogrepo"
	"dronedelivery/internal/adapters/out/postgres/dronerepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(app.CreateReconcileFleetCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&dronerepo.DroneDTO{},
		&catalogrepo.ShopDTO{},
		&catalogrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         app.CreateCreateOrderCommandHandler(),
		CancelOrder:         app.CreateCancelOrderCommandHandler(),
		ConfirmOrderPayment: app.CreateConfirmOrderPaymentCommandHandler(),
		ChangeOrderStatus:   app.CreateChangeOrderStatusCommandHandler(),
		AssignDrone:         app.CreateAssignDroneCommandHandler(),
		UpdateDroneBattery:  app.CreateUpdateDroneBatteryCommandHandler(),
		CreateDrone:         app.CreateCreateDroneCommandHandler(),
		UpdateDrone:         app.CreateUpdateDroneCommandHandler(),
		UpdateDroneLocation: app.CreateUpdateDroneLocationCommandHandler(),
		UpdateDroneStatus:   app.CreateUpdateDroneStatusCommandHandler(),
		DeleteDrone:         app.CreateDeleteDroneCommandHandler(),
		GetUserOrders:       app.CreateGetUserOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetShopOrders:       app.CreateGetShopOrdersQueryHandler(),
		GetAvailableDrones:  app.CreateGetAvailableDronesQueryHandler(),
		GetShopDrones:       app.CreateGetShopDronesQueryHandler(),
		GetDrone:            app.CreateGetDroneQueryHandler(),
	})
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
