// Package config provides common configuration utilities for simple-facts.
//
// It centralizes environment variable loading and configuration validation
// so the command binaries do not duplicate them.
//
// # Environment Variable Helpers
//
//	host := config.GetEnvOrDefault("FACTS_PG_HOST", "localhost")
//	port := config.GetEnvUint16("FACTS_PG_PORT", 5432)
//	debug := config.GetEnvBool("DEBUG", false)
//	timeout := config.GetEnvDuration("TIMEOUT", 30*time.Second)
//
// # Database Configuration
//
// DatabaseConfig carries the PostgreSQL settings and can produce both a
// connection URL and a db-utils DbConfig:
//
//	var cfg config.DatabaseConfig
//	cleanenv.ReadEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//	pool, err := pgxpool.New(ctx, cfg.ToDatabaseURL())
//
// # Validation
//
// Validators compose into a single error listing every problem:
//
//	err := config.Validate(func() config.ValidationErrors {
//		return config.CollectErrors(
//			config.RequireNonEmpty("host", cfg.Host),
//			config.RequireValidPort("port", cfg.Port),
//		)
//	})
package config
