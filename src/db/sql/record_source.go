package db

import (
	"context"
	"time"

	"finhealth-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store adapts the pool to the engine's RecordSource interface so the
// evaluation engine never sees pgx.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) IncomesSince(ctx context.Context, userID int, since time.Time) ([]models.Income, error) {
	return GetIncomesSince(ctx, s.pool, userID, since)
}

func (s *Store) ExpensesSince(ctx context.Context, userID int, since time.Time) ([]models.Expense, error) {
	return GetExpensesSince(ctx, s.pool, userID, since)
}

func (s *Store) AssetsForUser(ctx context.Context, userID int) ([]models.Asset, error) {
	return GetAllAssetsForUser(ctx, s.pool, userID)
}

func (s *Store) LiabilitiesForUser(ctx context.Context, userID int) ([]models.Liability, error) {
	return GetAllLiabilitiesForUser(ctx, s.pool, userID)
}
