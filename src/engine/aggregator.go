package engine

import (
	"context"
	"strings"
	"time"

	"finhealth-server/src/models"
)

// RecordSource supplies the raw financial records the engine aggregates over.
// Implementations must return every record owned by the user on or after the
// given date (assets and liabilities are current-state snapshots and carry no
// date). The pgx-backed store in db/sql satisfies this; tests use an in-memory
// fixture.
type RecordSource interface {
	IncomesSince(ctx context.Context, userID int, since time.Time) ([]models.Income, error)
	ExpensesSince(ctx context.Context, userID int, since time.Time) ([]models.Expense, error)
	AssetsForUser(ctx context.Context, userID int) ([]models.Asset, error)
	LiabilitiesForUser(ctx context.Context, userID int) ([]models.Liability, error)
}

// Aggregator computes scalar metrics from a user's records. It is read-only
// and holds no state beyond its source; any fetch error is returned unchanged.
type Aggregator struct {
	source RecordSource
	now    func() time.Time
}

func NewAggregator(source RecordSource) *Aggregator {
	return &Aggregator{source: source, now: time.Now}
}

// windowStart is today minus days, at date granularity. A record dated exactly
// on the boundary is inside the window.
func (a *Aggregator) windowStart(days int) time.Time {
	year, month, day := a.now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -days)
}

func (a *Aggregator) TotalIncome(ctx context.Context, userID, days int) (float64, error) {
	since := a.windowStart(days)
	incomes, err := a.source.IncomesSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, income := range incomes {
		if income.UserID == userID && !income.Date.Before(since) {
			total += income.Amount
		}
	}
	return total, nil
}

func (a *Aggregator) TotalExpense(ctx context.Context, userID, days int) (float64, error) {
	since := a.windowStart(days)
	expenses, err := a.source.ExpensesSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, expense := range expenses {
		if expense.UserID == userID && !expense.Date.Before(since) {
			total += expense.Amount
		}
	}
	return total, nil
}

// ExpenseByCategory sums the user's expenses in one category over the window.
// Category comparison is case-insensitive.
func (a *Aggregator) ExpenseByCategory(ctx context.Context, userID int, category string, days int) (float64, error) {
	since := a.windowStart(days)
	expenses, err := a.source.ExpensesSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, expense := range expenses {
		if expense.UserID != userID || expense.Date.Before(since) {
			continue
		}
		if strings.EqualFold(expense.Category, category) {
			total += expense.Amount
		}
	}
	return total, nil
}

func (a *Aggregator) TotalAssetValue(ctx context.Context, userID int) (float64, error) {
	assets, err := a.source.AssetsForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, asset := range assets {
		if asset.UserID == userID {
			total += asset.Value
		}
	}
	return total, nil
}

// TotalAssetMonthlyFlow sums monthly_flow over assets that declare one. An
// absent flow contributes zero.
func (a *Aggregator) TotalAssetMonthlyFlow(ctx context.Context, userID int) (float64, error) {
	assets, err := a.source.AssetsForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, asset := range assets {
		if asset.UserID == userID && asset.MonthlyFlow != nil {
			total += *asset.MonthlyFlow
		}
	}
	return total, nil
}

func (a *Aggregator) TotalLiabilityPayment(ctx context.Context, userID int) (float64, error) {
	liabilities, err := a.source.LiabilitiesForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, liability := range liabilities {
		if liability.UserID == userID {
			total += liability.MonthlyPayment
		}
	}
	return total, nil
}

func (a *Aggregator) TotalLiabilityBalance(ctx context.Context, userID int) (float64, error) {
	liabilities, err := a.source.LiabilitiesForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, liability := range liabilities {
		if liability.UserID == userID {
			total += liability.TotalAmount
		}
	}
	return total, nil
}
