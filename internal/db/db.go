package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/config"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

// New applies pending migrations when enabled and opens the pool.
func New(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.PostgresAutoMigrate {
		if err := runMigrations(ctx, cfg); err != nil {
			return nil, err
		}
	}

	pgxCfg, err := pgxpool.ParseConfig(cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres url: %w", err)
	}

	pgxCfg.MaxConns = cfg.PostgresMaxConn
	pgxCfg.MinConns = cfg.PostgresMinConn

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return pool, nil
}

func runMigrations(ctx context.Context, cfg *config.Config) error {
	sqlDB, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to init migration: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, _ := m.Version()
	logging.FromContext(ctx).Info(ctx, "migrations applied",
		zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
