package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Env       string
	ExportDir string
}

type DatabaseConfig struct {
	Name     string
	Host     string
	Port     string
	User     string
	Password string
}

// required database variables; absence of any fails startup before the menu
// is shown.
var required = []string{
	"POSTGRES_DB",
	"POSTGRES_HOST",
	"POSTGRES_PORT",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Name:     os.Getenv("POSTGRES_DB"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
		},
		Env:       getEnv("ENV", "development"),
		ExportDir: getEnv("EXPORT_DIR", "csv"),
	}
	return cfg, nil
}

// URL renders the connection string for the postgres driver.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
