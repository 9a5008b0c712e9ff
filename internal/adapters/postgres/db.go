// Package postgres implements the repository ports on PostgreSQL through a
// pgx connection pool. The schema lives in migrations/ and is applied with
// goose.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"tradelens/internal/ports"
)

type DB struct {
	Pool *pgxpool.Pool
	// JobLease bounds how long a refresh job may stay running; zero means
	// DefaultJobLease.
	JobLease time.Duration
}

func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() { db.Pool.Close() }

func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

// inTx runs fn in a transaction, committing when fn returns nil.
func (db *DB) inTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}

// SQLSTATE deadlock_detected.
const deadlockDetected = "40P01"

// ingestTx is inTx retried when Postgres picks the transaction as a deadlock
// victim. Concurrent ingests can lock the same profiles in different orders.
func (db *DB) ingestTx(ctx context.Context, fn func(pgx.Tx) error) error {
	b := retry.WithMaxRetries(3, retry.NewExponential(20*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := db.inTx(ctx, fn)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == deadlockDetected {
			return retry.RetryableError(err)
		}
		return err
	})
}

func noRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

var (
	_ ports.IngestRepository       = (*DB)(nil)
	_ ports.SearchRepository       = (*DB)(nil)
	_ ports.IntelligenceRepository = (*DB)(nil)
	_ ports.EnrichmentCache        = (*DB)(nil)
	_ ports.RefreshQueue           = (*DB)(nil)
	_ ports.CRMRepository          = (*DB)(nil)
	_ ports.Pinger                 = (*DB)(nil)
)
