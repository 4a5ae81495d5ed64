package db

import (
	"context"
	"fmt"
	"time"

	"finhealth-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, category, date, created_at
	`
	var created models.Expense
	err := pool.QueryRow(ctx, query, expense.UserID, expense.Amount, expense.Category, expense.Date).
		Scan(&created.ID, &created.UserID, &created.Amount, &created.Category, &created.Date, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetExpenseByID(ctx context.Context, pool *pgxpool.Pool, userID, expenseID int) (*models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM expenses WHERE id = $1 AND user_id = $2
	`
	var expense models.Expense
	err := pool.QueryRow(ctx, query, expenseID, userID).
		Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &expense.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func GetAllExpensesForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM expenses WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		err := rows.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &expense.CreatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// GetExpensesSince feeds the evaluation engine; category filtering stays in
// the aggregator, where the case-insensitive match lives.
func GetExpensesSince(ctx context.Context, pool *pgxpool.Pool, userID int, since time.Time) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM expenses WHERE user_id = $1 AND date >= $2
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		err := rows.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &expense.CreatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET amount = $1, category = $2, date = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, amount, category, date, created_at
	`
	var updated models.Expense
	err := pool.QueryRow(ctx, query, expense.Amount, expense.Category, expense.Date, expense.ID, expense.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Amount, &updated.Category, &updated.Date, &updated.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, userID, expenseID int) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}
