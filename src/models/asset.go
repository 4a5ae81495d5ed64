package models

import "time"

type Asset struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	MonthlyFlow *float64  `json:"monthly_flow"`
	CreatedAt   time.Time `json:"created_at"`
}
