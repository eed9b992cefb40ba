package config

import (
	"fmt"

	dbutils "github.com/tendant/db-utils/db"
)

// DatabaseConfig holds PostgreSQL database configuration
// This is shared across all services to avoid duplication
type DatabaseConfig struct {
	Host     string `env:"FACTS_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"FACTS_PG_PORT" env-default:"5432"`
	Database string `env:"FACTS_PG_DATABASE" env-default:"facts_db"`
	User     string `env:"FACTS_PG_USER" env-default:"facts"`
	Password string `env:"FACTS_PG_PASSWORD" env-default:"pwd"`
	Schema   string `env:"FACTS_PG_SCHEMA" env-default:"public"`
}

// ToDatabaseURL converts the config to a PostgreSQL connection URL
func (d DatabaseConfig) ToDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s,public",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

// ToDbConfig converts the config to a db-utils DbConfig
func (d DatabaseConfig) ToDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

// Validate checks that the configuration is usable
func (d DatabaseConfig) Validate() error {
	return Validate(func() ValidationErrors {
		return CollectErrors(
			RequireNonEmpty("host", d.Host),
			RequireValidPort("port", d.Port),
			RequireNonEmpty("database", d.Database),
			RequireNonEmpty("user", d.User),
		)
	})
}

// NewDatabaseConfigFromEnv creates a DatabaseConfig from environment variables
func NewDatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Host:     GetEnvOrDefault("FACTS_PG_HOST", "localhost"),
		Port:     GetEnvUint16("FACTS_PG_PORT", 5432),
		Database: GetEnvOrDefault("FACTS_PG_DATABASE", "facts_db"),
		User:     GetEnvOrDefault("FACTS_PG_USER", "facts"),
		Password: GetEnvOrDefault("FACTS_PG_PASSWORD", "pwd"),
		Schema:   GetEnvOrDefault("FACTS_PG_SCHEMA", "public"),
	}
}
