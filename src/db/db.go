package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the pool and verifies the database is reachable. Schema setup
// happens separately through RunMigrations.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
