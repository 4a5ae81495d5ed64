package db

import (
	"context"
	"fmt"

	"finhealth-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateLiability(ctx context.Context, pool *pgxpool.Pool, liability *models.Liability) (*models.Liability, error) {
	query := `
		INSERT INTO liabilities (user_id, name, type, total_amount, monthly_payment, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, type, total_amount, monthly_payment, due_date, created_at
	`
	var created models.Liability
	err := pool.QueryRow(ctx, query, liability.UserID, liability.Name, liability.Type, liability.TotalAmount, liability.MonthlyPayment, liability.DueDate).
		Scan(&created.ID, &created.UserID, &created.Name, &created.Type, &created.TotalAmount, &created.MonthlyPayment, &created.DueDate, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetLiabilityByID(ctx context.Context, pool *pgxpool.Pool, userID, liabilityID int) (*models.Liability, error) {
	query := `
		SELECT id, user_id, name, type, total_amount, monthly_payment, due_date, created_at
		FROM liabilities WHERE id = $1 AND user_id = $2
	`
	var liability models.Liability
	err := pool.QueryRow(ctx, query, liabilityID, userID).
		Scan(&liability.ID, &liability.UserID, &liability.Name, &liability.Type, &liability.TotalAmount, &liability.MonthlyPayment, &liability.DueDate, &liability.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &liability, nil
}

func GetAllLiabilitiesForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Liability, error) {
	query := `
		SELECT id, user_id, name, type, total_amount, monthly_payment, due_date, created_at
		FROM liabilities WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liabilities []models.Liability
	for rows.Next() {
		var liability models.Liability
		err := rows.Scan(&liability.ID, &liability.UserID, &liability.Name, &liability.Type, &liability.TotalAmount, &liability.MonthlyPayment, &liability.DueDate, &liability.CreatedAt)
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, liability)
	}
	return liabilities, rows.Err()
}

func UpdateLiability(ctx context.Context, pool *pgxpool.Pool, liability *models.Liability) (*models.Liability, error) {
	query := `
		UPDATE liabilities
		SET name = $1, type = $2, total_amount = $3, monthly_payment = $4, due_date = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, name, type, total_amount, monthly_payment, due_date, created_at
	`
	var updated models.Liability
	err := pool.QueryRow(ctx, query, liability.Name, liability.Type, liability.TotalAmount, liability.MonthlyPayment, liability.DueDate, liability.ID, liability.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Name, &updated.Type, &updated.TotalAmount, &updated.MonthlyPayment, &updated.DueDate, &updated.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteLiability(ctx context.Context, pool *pgxpool.Pool, userID, liabilityID int) error {
	query := `DELETE FROM liabilities WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, liabilityID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("liability not found")
	}
	return nil
}
