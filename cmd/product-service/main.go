package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bakery/cmd"
	bakeryhttp "bakery/internal/adapters/in/http"

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

	if err := cmd.MigrateProductSchema(gormDB); err != nil {
		log.Fatalf("Error migrating product schema: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "product-service")

	app := cmd.NewCompositionRoot(configs, gormDB)

	e := echo.New()
	e.Use(bakeryhttp.RequestID())
	e.Use(bakeryhttp.RequestLogger(logger))
	e.Use(bakeryhttp.StorageTimeout(configs.StorageTimeout))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := bakeryhttp.NewProductServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateListProductsQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
