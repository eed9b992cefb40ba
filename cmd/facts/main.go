package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"

	pkgconfig "github.com/tendant/simple-facts/pkg/config"
	"github.com/tendant/simple-facts/pkg/iam"
	iamapi "github.com/tendant/simple-facts/pkg/iam/api"
	"github.com/tendant/simple-facts/pkg/iam/iamdb"
	"github.com/tendant/simple-facts/pkg/ratelimit"
	"github.com/tendant/simple-facts/pkg/role"
	roleapi "github.com/tendant/simple-facts/pkg/role/api"
	"github.com/tendant/simple-facts/pkg/role/roledb"
)

type Config struct {
	DbConfig  pkgconfig.DatabaseConfig
	RateLimit pkgconfig.RateLimitConfig
}

// loadEnvFile loads environment variables from .env file if it exists
// Only sets variables that are not already set in the environment
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("Failed to get current working directory", "error", err)
		return
	}
	envFile := filepath.Join(cwd, ".env")

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}
	slog.Info("Configuration loaded from .env file", "path", envFile)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	config := Config{}
	cleanenv.ReadEnv(&config)

	if err := config.DbConfig.Validate(); err != nil {
		slog.Error("Invalid database configuration", "error", err)
		os.Exit(-1)
	}
	if err := config.RateLimit.Validate(); err != nil {
		slog.Error("Invalid rate limit configuration", "error", err)
		os.Exit(-1)
	}

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	if config.RateLimit.Enabled {
		rateLimiter := ratelimit.NewMiddleware(config.RateLimit.ToMiddlewareConfig())
		server.R.Use(rateLimiter.Handler)
		slog.Info("Rate limiting configured",
			"global_per_minute", config.RateLimit.GlobalPerMinute,
			"per_ip_per_minute", config.RateLimit.PerIPPerMinute)
	}

	dbURL := config.DbConfig.ToDatabaseURL()
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", config.DbConfig.Database,
			"host", config.DbConfig.Host, "port", config.DbConfig.Port,
			"user", config.DbConfig.User, "schema", config.DbConfig.Schema)
		os.Exit(-1)
	}

	roleQueries := roledb.New(pool)
	roleRepo := role.NewPostgresRoleRepository(roleQueries)
	roleUserRepo := role.NewPostgresRoleUserRepository(roleQueries)
	roleService := role.NewRoleService(roleRepo, roleUserRepo)
	roleHandle := roleapi.NewHandle(roleService)
	roleHandle.RegisterRoutes(server.R)

	iamQueries := iamdb.New(pool)
	iamRepo := iam.NewPostgresIamRepository(iamQueries)
	iamService := iam.NewIamService(iamRepo)
	iamHandle := iamapi.NewHandle(iamService)
	iamHandle.RegisterRoutes(server.R)

	server.Run()
}
