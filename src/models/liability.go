package models

import "time"

type Liability struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	TotalAmount    float64   `json:"total_amount"`
	MonthlyPayment float64   `json:"monthly_payment"`
	DueDate        time.Time `json:"due_date"`
	CreatedAt      time.Time `json:"created_at"`
}
