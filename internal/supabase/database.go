package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"sitelog-backend/internal/models"
)

// DatabaseClient runs the daily-log queries against Postgres (lib/pq) or
// SQLite (modernc). Queries are written with ? placeholders and rebound for
// the active driver.
type DatabaseClient struct {
	db *sqlx.DB
}

func NewDatabaseClient(driver, connectionString string) (*DatabaseClient, error) {
	db, err := sqlx.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// One connection keeps :memory: databases alive and serialises writers.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// DB exposes the handle for the migrator.
func (d *DatabaseClient) DB() *sqlx.DB {
	return d.db
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func (d *DatabaseClient) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := d.db.GetContext(ctx, dest, d.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

func (d *DatabaseClient) selectRows(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.db.SelectContext(ctx, dest, d.db.Rebind(query), args...)
}

func (d *DatabaseClient) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.db.ExecContext(ctx, d.db.Rebind(query), args...)
}

// execOne runs a statement that must touch exactly one row.
func (d *DatabaseClient) execOne(ctx context.Context, query string, args ...interface{}) error {
	res, err := d.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
