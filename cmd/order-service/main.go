package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bakery/cmd"
	bakeryhttp "bakery/internal/adapters/in/http"
	"bakery/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := cmd.MigrateOrderSchema(gormDB); err != nil {
		log.Fatalf("Error migrating order schema: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "order-service")

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.DeliveryReportEnabled {
		jobManager := jobs.NewJobManager(app.CreateListOrdersQueryHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs, logger)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.Use(bakeryhttp.RequestID())
	e.Use(bakeryhttp.RequestLogger(logger))
	e.Use(bakeryhttp.StorageTimeout(configs.StorageTimeout))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := bakeryhttp.NewOrderServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
