package db

import (
	"context"
	"fmt"
	"time"

	"finhealth-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateIncome(ctx context.Context, pool *pgxpool.Pool, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO incomes (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, category, date, created_at
	`
	var created models.Income
	err := pool.QueryRow(ctx, query, income.UserID, income.Amount, income.Category, income.Date).
		Scan(&created.ID, &created.UserID, &created.Amount, &created.Category, &created.Date, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetIncomeByID(ctx context.Context, pool *pgxpool.Pool, userID, incomeID int) (*models.Income, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM incomes WHERE id = $1 AND user_id = $2
	`
	var income models.Income
	err := pool.QueryRow(ctx, query, incomeID, userID).
		Scan(&income.ID, &income.UserID, &income.Amount, &income.Category, &income.Date, &income.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func GetAllIncomesForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Income, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM incomes WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var income models.Income
		err := rows.Scan(&income.ID, &income.UserID, &income.Amount, &income.Category, &income.Date, &income.CreatedAt)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

// GetIncomesSince feeds the evaluation engine: the owner and window filters
// run against the (user_id, date) index instead of in memory.
func GetIncomesSince(ctx context.Context, pool *pgxpool.Pool, userID int, since time.Time) ([]models.Income, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM incomes WHERE user_id = $1 AND date >= $2
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var income models.Income
		err := rows.Scan(&income.ID, &income.UserID, &income.Amount, &income.Category, &income.Date, &income.CreatedAt)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

func UpdateIncome(ctx context.Context, pool *pgxpool.Pool, income *models.Income) (*models.Income, error) {
	query := `
		UPDATE incomes
		SET amount = $1, category = $2, date = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, amount, category, date, created_at
	`
	var updated models.Income
	err := pool.QueryRow(ctx, query, income.Amount, income.Category, income.Date, income.ID, income.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Amount, &updated.Category, &updated.Date, &updated.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteIncome(ctx context.Context, pool *pgxpool.Pool, userID, incomeID int) error {
	query := `DELETE FROM incomes WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, incomeID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("income not found")
	}
	return nil
}
