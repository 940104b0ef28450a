package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/filingwatch/regdocs-monitor/gen/ent"
	"github.com/filingwatch/regdocs-monitor/internal/common"
)

// Open connects to the state database and runs schema migration. A non-empty
// DSN selects Postgres via pgx; otherwise the local SQLite file at
// cfg.Pipeline.DBPath is used. The returned cleanup closes everything.
func Open(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	if cfg.Database.DSN != "" {
		return openPostgres(ctx, cfg, logger)
	}
	return openSQLite(ctx, cfg.Pipeline.DBPath, logger)
}

func openPostgres(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	db := cfg.Database
	logger.Info("connecting to database", "dsn", db.DSN)
	pc, err := pgxpool.ParseConfig(db.DSN)
	if err != nil {
		logger.Error("failed to parse database DSN", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = db.MaxConns
	pc.MinConns = db.MinConns
	pc.MaxConnLifetime = db.MaxConnLifetime
	pc.MaxConnIdleTime = db.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "regdocs-monitor"
	if db.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = db.StatementTimeout.String()
	}

	dialCtx, cancel := context.WithTimeout(ctx, db.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for Ent
	sqldb := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, sqldb)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		pool.Close()
		return nil, nil, common.WrapError(err, "migrate schema")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
		pool.Close()
	}
	logger.Info("successfully connected to database")
	return client, cleanup, nil
}

func openSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, common.WrapError(err, "create data directory")
		}
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, nil, err
	}
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, nil, common.WrapError(err, "migrate schema")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	logger.Info("sqlite state database ready", "path", path)
	return client, cleanup, nil
}

// WithTx runs fn inside a transaction, committing on success and rolling back
// on error or panic.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "committing transaction")
	}
	return nil
}
