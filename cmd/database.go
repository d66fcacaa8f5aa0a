package cmd

import (
	"database/sql"
	"fmt"

	"bakery/internal/adapters/out/postgres/catalogrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to postgres through lib/pq and hands the connection
// to gorm. Keeping lib/pq as the driver means storage failures surface as
// *pq.Error values the fault classifier understands.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("initialize gorm: %w", err)
	}

	return gormDB, nil
}

// MigrateOrderSchema creates the orders table when it does not exist yet.
func MigrateOrderSchema(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{})
}

// MigrateProductSchema creates the products table when it does not exist yet.
func MigrateProductSchema(db *gorm.DB) error {
	return db.AutoMigrate(&productrepo.ProductDTO{})
}

// MigrateCatalogSchema creates the cake_catalog table when it does not exist yet.
func MigrateCatalogSchema(db *gorm.DB) error {
	return db.AutoMigrate(&catalogrepo.CakeDTO{})
}
