package db

import (
	"context"
	"fmt"

	"finhealth-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateAsset(ctx context.Context, pool *pgxpool.Pool, asset *models.Asset) (*models.Asset, error) {
	query := `
		INSERT INTO assets (user_id, name, type, value, monthly_flow)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, type, value, monthly_flow, created_at
	`
	var created models.Asset
	err := pool.QueryRow(ctx, query, asset.UserID, asset.Name, asset.Type, asset.Value, asset.MonthlyFlow).
		Scan(&created.ID, &created.UserID, &created.Name, &created.Type, &created.Value, &created.MonthlyFlow, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetAssetByID(ctx context.Context, pool *pgxpool.Pool, userID, assetID int) (*models.Asset, error) {
	query := `
		SELECT id, user_id, name, type, value, monthly_flow, created_at
		FROM assets WHERE id = $1 AND user_id = $2
	`
	var asset models.Asset
	err := pool.QueryRow(ctx, query, assetID, userID).
		Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Type, &asset.Value, &asset.MonthlyFlow, &asset.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func GetAllAssetsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Asset, error) {
	query := `
		SELECT id, user_id, name, type, value, monthly_flow, created_at
		FROM assets WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		err := rows.Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Type, &asset.Value, &asset.MonthlyFlow, &asset.CreatedAt)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func UpdateAsset(ctx context.Context, pool *pgxpool.Pool, asset *models.Asset) (*models.Asset, error) {
	query := `
		UPDATE assets
		SET name = $1, type = $2, value = $3, monthly_flow = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, type, value, monthly_flow, created_at
	`
	var updated models.Asset
	err := pool.QueryRow(ctx, query, asset.Name, asset.Type, asset.Value, asset.MonthlyFlow, asset.ID, asset.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Name, &updated.Type, &updated.Value, &updated.MonthlyFlow, &updated.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteAsset(ctx context.Context, pool *pgxpool.Pool, userID, assetID int) error {
	query := `DELETE FROM assets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, assetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("asset not found")
	}
	return nil
}
