package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultStorageTimeout = 5 * time.Second

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	StorageTimeout        time.Duration
	DeliveryReportEnabled bool
}

// LoadConfig reads the service configuration from a .env file merged with the
// process environment. Values already present in the environment win over the
// file.
func LoadConfig() (Config, error) {
	// Missing .env is fine in containerized deployments, the environment
	// carries everything there.
	_ = godotenv.Load(".env")

	config := Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		StorageTimeout:        defaultStorageTimeout,
		DeliveryReportEnabled: os.Getenv("DELIVERY_REPORT_ENABLED") == "true",
	}

	if raw := os.Getenv("STORAGE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse STORAGE_TIMEOUT: %w", err)
		}
		config.StorageTimeout = timeout
	}

	return config, nil
}
